package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/model"
)

type Storage struct {
	db *sql.DB
}

func NewStorage(cfg config.DBConfig) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS triage_runs (
			id SERIAL PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS rated_articles (
			id SERIAL PRIMARY KEY,
			run_id INTEGER REFERENCES triage_runs(id),
			date TEXT,
			keyword TEXT,
			title TEXT,
			description TEXT,
			url TEXT,
			summary TEXT,
			labels TEXT,
			rating TEXT,
			rating_explanation TEXT,
			quality_score INTEGER,
			quality_explanation TEXT
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %s: %w", query, err)
		}
	}

	return nil
}

// CreateRun 创建一次运行记录
func (s *Storage) CreateRun() (int, error) {
	var runID int
	err := s.db.QueryRow(`INSERT INTO triage_runs DEFAULT VALUES RETURNING id`).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// SaveRated 保存一次运行的全部评级结果
func (s *Storage) SaveRated(runID int, rated []model.RatedArticle) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range rated {
		_, err = tx.Exec(`
			INSERT INTO rated_articles (run_id, date, keyword, title, description, url,
				summary, labels, rating, rating_explanation, quality_score, quality_explanation)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			runID, r.Date, r.Keyword, r.Title, r.Description, r.URL,
			r.Summary, r.Labels, r.Rating,
			strings.Join(r.RatingExplain, "; "), r.QualityScore,
			strings.Join(r.QualityExplain, "; "))
		if err != nil {
			return fmt.Errorf("failed to insert rated article: %w", err)
		}
	}

	return tx.Commit()
}
