package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/model"
)

// resultHeaders 原始结果 CSV 列顺序
var resultHeaders = []string{"date", "keyword", "title", "description", "url"}

// ratedHeaders 评级结果 CSV 列顺序
var ratedHeaders = []string{
	"date", "keyword", "title", "description", "url",
	"one-sentence-summary", "labels", "rating",
	"rating-explanation", "quality-score", "quality-score-explanation",
}

// Store CSV 输出文件集合
type Store struct {
	resultsFile string
	urlsFile    string
	ratedFile   string
}

// NewStore 创建 CSV 存储
func NewStore(cfg config.OutputConfig) *Store {
	return &Store{
		resultsFile: cfg.ResultsFile,
		urlsFile:    cfg.URLsFile,
		ratedFile:   cfg.RatedFile,
	}
}

// AppendResults 把检索结果追加到原始结果文件，文件为空时先写表头
// 字段不全的记录直接丢弃
func (s *Store) AppendResults(articles []model.Article) error {
	f, err := os.OpenFile(s.resultsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat results file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(resultHeaders); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for _, a := range articles {
		if !a.Valid() {
			continue
		}
		if err := w.Write([]string{a.Date, a.Keyword, a.Title, a.Description, a.URL}); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// WriteURLs 覆盖写 URL 列表文件，每行一个 URL
func (s *Store) WriteURLs(articles []model.Article) error {
	f, err := os.Create(s.urlsFile)
	if err != nil {
		return fmt.Errorf("create urls file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, a := range articles {
		if a.URL == "" {
			continue
		}
		if err := w.Write([]string{a.URL}); err != nil {
			return fmt.Errorf("write url: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// WriteRated 覆盖写评级结果文件
func (s *Store) WriteRated(rated []model.RatedArticle) error {
	f, err := os.Create(s.ratedFile)
	if err != nil {
		return fmt.Errorf("create rated file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ratedHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rated {
		record := []string{
			r.Date,
			r.Keyword,
			r.Title,
			r.Description,
			r.URL,
			r.Summary,
			r.Labels,
			r.Rating,
			strings.Join(r.RatingExplain, "; "),
			strconv.Itoa(r.QualityScore),
			strings.Join(r.QualityExplain, "; "),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
