package models

// VerseResult is a verse excerpt illustrating a content word.
type VerseResult struct {
	Arabic     string `json:"arabic"`
	English    string `json:"english"`
	Reference  string `json:"reference"`
	SurahName  string `json:"surah_name,omitempty"`
	AyahNumber int    `json:"ayah_number,omitempty"`
	AudioURL   string `json:"audio_url,omitempty"`
}

// Phrase is one idiomatic usage example for a function word.
type Phrase struct {
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	English         string `json:"english"`
	Context         string `json:"context,omitempty"`
	Category        string `json:"category,omitempty"`
}

// ContextResult is the tagged union returned by a context lookup: exactly
// one of Verse and Phrases is set. Generation identifies the lookup that
// produced the result so callers can discard superseded responses.
type ContextResult struct {
	Verse      *VerseResult `json:"verse,omitempty"`
	Phrases    []Phrase     `json:"phrases,omitempty"`
	Generation uint64       `json:"-"`
}
