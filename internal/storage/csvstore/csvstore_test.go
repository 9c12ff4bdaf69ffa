package csvstore

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(config.OutputConfig{
		ResultsFile: filepath.Join(dir, "grcdata.csv"),
		URLsFile:    filepath.Join(dir, "urls.csv"),
		RatedFile:   filepath.Join(dir, "grcdata_rated.csv"),
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func sampleArticle(url string) model.Article {
	return model.Article{
		Date:        "2026-08-27",
		Keyword:     "grc",
		Title:       "Some Title",
		Description: "Some description",
		URL:         url,
	}
}

func TestAppendResults(t *testing.T) {
	s := newTestStore(t)

	articles := []model.Article{
		sampleArticle("https://example.com/1"),
		sampleArticle("https://example.com/2"),
	}
	if err := s.AppendResults(articles); err != nil {
		t.Fatalf("AppendResults() error = %v", err)
	}

	records := readCSV(t, s.resultsFile)
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if records[0][0] != "date" || records[0][4] != "url" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][4] != "https://example.com/1" {
		t.Errorf("first row url = %q", records[1][4])
	}
}

func TestAppendResultsNoDuplicateHeader(t *testing.T) {
	s := newTestStore(t)

	if err := s.AppendResults([]model.Article{sampleArticle("u1")}); err != nil {
		t.Fatalf("AppendResults() error = %v", err)
	}
	if err := s.AppendResults([]model.Article{sampleArticle("u2")}); err != nil {
		t.Fatalf("AppendResults() error = %v", err)
	}

	records := readCSV(t, s.resultsFile)
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if records[1][0] == "date" || records[2][0] == "date" {
		t.Error("header written more than once")
	}
}

func TestAppendResultsSkipsInvalid(t *testing.T) {
	s := newTestStore(t)

	invalid := sampleArticle("u1")
	invalid.Description = ""
	if err := s.AppendResults([]model.Article{invalid, sampleArticle("u2")}); err != nil {
		t.Fatalf("AppendResults() error = %v", err)
	}

	records := readCSV(t, s.resultsFile)
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(records))
	}
}

func TestWriteURLs(t *testing.T) {
	s := newTestStore(t)

	articles := []model.Article{sampleArticle("u1"), sampleArticle("u2")}
	if err := s.WriteURLs(articles); err != nil {
		t.Fatalf("WriteURLs() error = %v", err)
	}

	records := readCSV(t, s.urlsFile)
	if len(records) != 2 || records[0][0] != "u1" || records[1][0] != "u2" {
		t.Errorf("urls file = %v", records)
	}

	// 重复写入应当覆盖而不是追加
	if err := s.WriteURLs(articles[:1]); err != nil {
		t.Fatalf("WriteURLs() error = %v", err)
	}
	if records = readCSV(t, s.urlsFile); len(records) != 1 {
		t.Errorf("got %d rows after rewrite, want 1", len(records))
	}
}

func TestWriteRated(t *testing.T) {
	s := newTestStore(t)

	rated := []model.RatedArticle{
		{
			Article: sampleArticle("u1"),
			Analysis: model.Analysis{
				Summary:        "one sentence",
				Labels:         "Compliance, Privacy",
				Rating:         "S Tier",
				RatingExplain:  []string{"r1", "r2"},
				QualityScore:   90,
				QualityExplain: []string{"q1"},
			},
		},
	}
	if err := s.WriteRated(rated); err != nil {
		t.Fatalf("WriteRated() error = %v", err)
	}

	records := readCSV(t, s.ratedFile)
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(records))
	}
	if len(records[0]) != 11 {
		t.Errorf("header has %d columns, want 11", len(records[0]))
	}
	row := records[1]
	if row[7] != "S Tier" {
		t.Errorf("rating column = %q, want S Tier", row[7])
	}
	if row[8] != "r1; r2" {
		t.Errorf("rating-explanation column = %q", row[8])
	}
	if row[9] != "90" {
		t.Errorf("quality-score column = %q, want 90", row[9])
	}
}
