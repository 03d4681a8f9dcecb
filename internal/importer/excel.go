// Package importer loads vocabulary from spreadsheet files into the
// word store.
package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

// expected column order on the first sheet. The header row is required
// and checked loosely (case-insensitive prefix match).
var columns = []string{"arabic", "transliteration", "english", "frequency", "audio_url"}

// Summary reports what an import run did.
type Summary struct {
	Imported int
	Skipped  int
}

type Importer struct {
	words repository.WordRepository
	log   *logger.Logger
}

func New(words repository.WordRepository) *Importer {
	return &Importer{words: words, log: logger.Default().WithPrefix("importer")}
}

// ImportFile reads an .xlsx workbook and inserts each row as a word.
// Rows whose Arabic already exists are skipped, so re-running an import
// is harmless.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("could not open workbook: %v", err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("could not read sheet %q: %v", sheet, err))
	}
	if len(rows) < 2 {
		return nil, apperrors.NewValidationError("workbook", "no data rows below the header")
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for n, row := range rows[1:] {
		word, err := parseRow(row)
		if err != nil {
			i.log.Warn("skipping row %d: %v", n+2, err)
			summary.Skipped++
			continue
		}

		existing, err := i.words.GetByArabic(ctx, word.Arabic)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			summary.Skipped++
			continue
		}

		if _, err := i.words.Insert(ctx, word); err != nil {
			return nil, err
		}
		summary.Imported++
	}

	i.log.Info("import finished: %d imported, %d skipped", summary.Imported, summary.Skipped)
	return summary, nil
}

func checkHeader(header []string) error {
	if len(header) < 3 {
		return apperrors.NewValidationError("header", "expected columns arabic, transliteration, english")
	}
	for i, want := range columns[:3] {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if !strings.HasPrefix(got, want) {
			return apperrors.NewValidationError("header",
				fmt.Sprintf("column %d is %q, expected %q", i+1, header[i], want))
		}
	}
	return nil
}

func parseRow(row []string) (models.Word, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	w := models.Word{
		Arabic:          cell(0),
		Transliteration: cell(1),
		English:         cell(2),
		AudioURL:        cell(4),
	}
	if w.Arabic == "" {
		return w, fmt.Errorf("empty arabic cell")
	}
	if w.English == "" {
		return w, fmt.Errorf("empty english cell")
	}
	if freq := cell(3); freq != "" {
		n, err := strconv.Atoi(freq)
		if err != nil || n < 0 {
			return w, fmt.Errorf("bad frequency %q", freq)
		}
		w.Frequency = n
	}
	return w, nil
}
