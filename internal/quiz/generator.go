// Package quiz builds multiple-choice questions from the word list and
// scores completed attempts.
package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/models"
)

// Mode selects which words a quiz draws from.
type Mode string

const (
	// ModeLesson quizzes the first words of the list in order, the way a
	// lesson presents them.
	ModeLesson Mode = "lesson"
	// ModeRandom samples words uniformly from the whole list.
	ModeRandom Mode = "random"

	// distractorCount is the number of wrong options per question.
	distractorCount = 3
)

// Generator produces quizzes. The rand source is injected so tests can
// pin the shuffle; the mutex guards it across concurrent requests.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds size questions from the pool. Each question asks for
// the English meaning of an Arabic word; options hold the correct answer
// plus up to three distractors drawn from other words' meanings without
// replacement. With a pool too small for a full option set, questions
// carry fewer options rather than duplicated ones.
func (g *Generator) Generate(pool []models.Word, size int, mode Mode) ([]models.QuizQuestion, error) {
	if len(pool) == 0 {
		return nil, apperrors.NewValidationError("words", "word list is empty")
	}
	if size <= 0 {
		return nil, apperrors.NewValidationError("size", "must be positive")
	}
	if size > len(pool) {
		size = len(pool)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var selected []models.Word
	switch mode {
	case ModeLesson:
		selected = pool[:size]
	case ModeRandom:
		perm := g.rng.Perm(len(pool))
		selected = make([]models.Word, size)
		for i := 0; i < size; i++ {
			selected[i] = pool[perm[i]]
		}
	default:
		return nil, apperrors.NewValidationError("mode", fmt.Sprintf("unknown quiz mode %q", mode))
	}

	questions := make([]models.QuizQuestion, 0, len(selected))
	for _, w := range selected {
		questions = append(questions, g.buildQuestion(w, pool))
	}
	return questions, nil
}

func (g *Generator) buildQuestion(w models.Word, pool []models.Word) models.QuizQuestion {
	options := []string{w.English}
	seen := map[string]struct{}{w.English: {}}

	for _, i := range g.rng.Perm(len(pool)) {
		if len(options) == distractorCount+1 {
			break
		}
		cand := pool[i]
		if cand.ID == w.ID {
			continue
		}
		if _, dup := seen[cand.English]; dup {
			continue
		}
		seen[cand.English] = struct{}{}
		options = append(options, cand.English)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return models.QuizQuestion{
		Word:          w,
		Options:       options,
		CorrectAnswer: w.English,
	}
}

// Score grades submitted answers against the questions they came from.
// answers is indexed like questions; missing trailing answers count as
// wrong. The percentage rounds half away from zero.
func Score(questions []models.QuizQuestion, answers []string) models.QuizScore {
	if len(questions) == 0 {
		return models.QuizScore{}
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return models.QuizScore{
		CorrectCount: correct,
		Percentage:   int(math.Round(100 * float64(correct) / float64(len(questions)))),
	}
}
