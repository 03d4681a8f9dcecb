// Package lookup resolves a vocabulary word to its learning context:
// a verse excerpt for content words, a set of usage phrases for function
// words. Lookups consult a curated local table first and fall back to the
// external search API through an ordered chain of (strategy, endpoint)
// attempts.
package lookup

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/tijeane/quran-learning/internal/classifier"
	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/quran"
)

type Resolver struct {
	client   quran.ClientInterface
	simulate bool
	gen      atomic.Uint64
}

// NewResolver creates a Resolver. With simulate set, lookups are answered
// from the local tables only and no network call is ever made.
func NewResolver(client quran.ClientInterface, simulate bool) *Resolver {
	return &Resolver{client: client, simulate: simulate}
}

// Latest returns the generation of the most recently issued lookup.
// A caller holding results from overlapping lookups keeps only the one
// whose Generation equals Latest.
func (r *Resolver) Latest() uint64 {
	return r.gen.Load()
}

// Resolve returns the context for a word. The strategy/endpoint loop is
// strictly sequential; each network attempt is bounded by the client's
// per-call timeout and never retried. All failure modes (no match,
// timeout, upstream error) surface as typed errors the caller may retry.
func (r *Resolver) Resolve(ctx context.Context, word models.Word) (*models.ContextResult, error) {
	gen := r.gen.Add(1)
	log := logger.FromContext(ctx).WithPrefix("lookup").WithField("arabic", word.Arabic)

	if classifier.IsFunction(word.Arabic) {
		log.Debug("function word, using phrase table")
		phrases := PhrasesFor(word.Arabic)
		if len(phrases) == 0 {
			return nil, apperrors.NewNotFoundError("phrases", fmt.Sprintf("no usage phrases authored for %q", word.Arabic))
		}
		return &models.ContextResult{Phrases: phrases, Generation: gen}, nil
	}

	// Curated table first: instant and deterministic for common words.
	if v, ok := fallbackVerses[word.Arabic]; ok {
		log.Debug("fallback verse hit")
		verse := v
		return &models.ContextResult{Verse: &verse, Generation: gen}, nil
	}

	if r.simulate {
		if verse := r.similarFallback(word.Arabic); verse != nil {
			return &models.ContextResult{Verse: verse, Generation: gen}, nil
		}
		return nil, apperrors.NewNotFoundError("verse", fmt.Sprintf("no simulated verse for %q", word.Arabic))
	}

	match := r.search(ctx, word, log)
	if match == nil {
		// Last resort before reporting failure: a near miss in the
		// curated table (inflected forms share a stem with their entry).
		if verse := r.similarFallback(word.Arabic); verse != nil {
			log.Debug("using similar fallback verse")
			return &models.ContextResult{Verse: verse, Generation: gen}, nil
		}
		return nil, apperrors.NewNotFoundError("verse",
			fmt.Sprintf("no verses found containing %q or %q", word.English, word.Transliteration))
	}

	verse := r.buildVerse(ctx, match, log)
	return &models.ContextResult{Verse: verse, Generation: gen}, nil
}

// search walks the strategy chain and returns the first match, or nil.
func (r *Resolver) search(ctx context.Context, word models.Word, log *logger.Logger) *quran.Match {
	for _, term := range SearchTerms(word) {
		for _, scope := range searchScopes {
			if ctx.Err() != nil {
				return nil
			}
			res, err := r.client.Search(ctx, term.Term, scope, quran.EditionEnglish)
			if err != nil {
				log.Debug("search attempt failed: strategy=%s, scope=%q: %v", term.Strategy, scope, err)
				continue
			}
			if len(res.Matches) > 0 {
				log.Info("found %d matches: strategy=%s, scope=%q", len(res.Matches), term.Strategy, scope)
				m := res.Matches[0]
				return &m
			}
		}
	}
	return nil
}

// buildVerse assembles the result from a search match. The precise Arabic
// script and the audio URL are both best effort: on failure the search
// text stands in and the audio field is omitted.
func (r *Resolver) buildVerse(ctx context.Context, m *quran.Match, log *logger.Logger) *models.VerseResult {
	verse := &models.VerseResult{
		Arabic:     m.Text,
		English:    m.Text,
		Reference:  fmt.Sprintf("Surah %s %d:%d", m.Surah.EnglishName, m.Surah.Number, m.NumberInSurah),
		SurahName:  m.Surah.EnglishName,
		AyahNumber: m.NumberInSurah,
	}

	if ayah, err := r.client.Ayah(ctx, m.Surah.Number, m.NumberInSurah, quran.EditionArabic); err != nil {
		log.Warn("could not fetch Arabic text, keeping search result text: %v", err)
	} else if ayah.Text != "" {
		verse.Arabic = ayah.Text
	}

	if m.Surah.Number > 0 && m.NumberInSurah > 0 {
		verse.AudioURL = quran.AudioURL(m.Surah.Number, m.NumberInSurah)
	}
	return verse
}

// similarFallback scans the curated table for a key that contains the
// word or is contained by it. Keys are visited in sorted order so the
// rescue is deterministic.
func (r *Resolver) similarFallback(arabic string) *models.VerseResult {
	keys := make([]string, 0, len(fallbackVerses))
	for k := range fallbackVerses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, arabic) || strings.Contains(arabic, k) {
			verse := fallbackVerses[k]
			return &verse
		}
	}
	return nil
}
