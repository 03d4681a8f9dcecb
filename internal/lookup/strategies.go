package lookup

import (
	"strings"

	"github.com/tijeane/quran-learning/internal/models"
)

// Strategy names, in the order they are attempted.
const (
	StrategyTransliteration = "transliteration"
	StrategyEnglish         = "english"
	StrategyVariant         = "variant"
	StrategyArabic          = "arabic"
)

// SearchTerm is one keyword attempt against the search API.
type SearchTerm struct {
	Term     string
	Strategy string
}

// searchScopes are the endpoint URL variants tried for every term, in
// order. The empty scope is the legacy path shape without a scope segment.
var searchScopes = []string{"2", "all", ""}

// englishStopWords are glosses too generic to search for: they match
// thousands of verses and the first hit is rarely illustrative.
var englishStopWords = map[string]struct{}{
	"in": {}, "of": {}, "the": {}, "and": {}, "to": {}, "a": {},
	"is": {}, "it": {}, "he": {}, "she": {}, "we": {}, "you": {}, "they": {},
}

// rootVariants maps a triliteral root substring to known inflected forms
// that occur in the text. When a word contains the root, each variant is
// searched as its own term; an exact inflected form matches where the
// dictionary citation form does not.
var rootVariants = []struct {
	root     string
	variants []string
}{
	{"خلق", []string{"خلق", "خلقنا", "يخلق", "خلقكم"}},
	{"رحم", []string{"الرحمن", "الرحيم", "رحمة"}},
	{"علم", []string{"يعلم", "العليم", "علم"}},
	{"كتب", []string{"كتاب", "الكتاب", "كتبنا"}},
	{"قول", []string{"قال", "قالوا", "يقول"}},
	{"عبد", []string{"اعبدوا", "يعبدون", "عبادة"}},
}

// SearchTerms builds the ordered keyword attempts for a word. The raw
// Arabic string comes last and always applies, so the list is never empty.
func SearchTerms(w models.Word) []SearchTerm {
	var terms []SearchTerm

	if t := strings.TrimSpace(w.Transliteration); t != "" {
		terms = append(terms, SearchTerm{Term: t, Strategy: StrategyTransliteration})
	}

	english := strings.TrimSpace(w.English)
	if len(english) > 2 {
		if _, stop := englishStopWords[strings.ToLower(english)]; !stop {
			terms = append(terms, SearchTerm{Term: english, Strategy: StrategyEnglish})
		}
	}

	for _, rv := range rootVariants {
		if strings.Contains(w.Arabic, rv.root) {
			for _, v := range rv.variants {
				if v != w.Arabic {
					terms = append(terms, SearchTerm{Term: v, Strategy: StrategyVariant})
				}
			}
			break
		}
	}

	terms = append(terms, SearchTerm{Term: w.Arabic, Strategy: StrategyArabic})
	return terms
}
