package engine

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/keywords"
	"github.com/iWorld-y/news_triage/internal/logger"
	dm "github.com/iWorld-y/news_triage/internal/model"
	"github.com/iWorld-y/news_triage/internal/rater"
	"github.com/iWorld-y/news_triage/internal/search"
)

// 送入评级器的正文上限，防止超出 Token 限制
const maxContentLen = 6000

// Extractor 文章正文抽取依赖
type Extractor interface {
	Extract(url string) (*dm.Content, error)
}

// Store 结果文件输出依赖
type Store interface {
	AppendResults(articles []dm.Article) error
	WriteURLs(articles []dm.Article) error
	WriteRated(rated []dm.RatedArticle) error
}

// Sink 可选的数据库落库依赖
type Sink interface {
	CreateRun() (int, error)
	SaveRated(runID int, rated []dm.RatedArticle) error
}

// Engine 核心处理流水线：关键词 -> 搜索 -> 抽取 -> 评级 -> 输出
type Engine struct {
	cfg       *config.Config
	searcher  search.Searcher
	extractor Extractor
	rater     rater.Rater
	store     Store
	sink      Sink
}

// NewEngine 创建引擎实例，sink 可为 nil
func NewEngine(cfg *config.Config, searcher search.Searcher, extractor Extractor, r rater.Rater, store Store, sink Sink) *Engine {
	return &Engine{
		cfg:       cfg,
		searcher:  searcher,
		extractor: extractor,
		rater:     r,
		store:     store,
		sink:      sink,
	}
}

// Run 执行一次完整的采集评级流程
// 整个流程按关键词、再按 URL 串行处理；单条失败跳过，继续后续条目
func (e *Engine) Run(ctx context.Context) error {
	kws, err := keywords.Load(e.cfg.KeywordsFile)
	if err != nil {
		return err
	}
	if len(kws) == 0 {
		return fmt.Errorf("no keywords found in %s", e.cfg.KeywordsFile)
	}

	articles := e.collect(ctx, kws)
	if len(articles) == 0 {
		return fmt.Errorf("no articles found for any keywords")
	}

	if err := e.store.AppendResults(articles); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	if err := e.store.WriteURLs(articles); err != nil {
		return fmt.Errorf("write urls file: %w", err)
	}
	logger.Log.Infof("已保存 %d 条检索结果", len(articles))

	rated := e.triage(ctx, articles)

	if err := e.store.WriteRated(rated); err != nil {
		return fmt.Errorf("write rated file: %w", err)
	}
	logger.Log.Infof("评级完成：%d/%d 篇文章成功", len(rated), len(articles))

	// 落库失败不影响文件输出
	if e.sink != nil {
		if err := e.saveToDB(rated); err != nil {
			logger.Log.Errorf("保存评级结果到数据库失败: %v", err)
		}
	}

	return nil
}

// collect 逐个关键词搜索，汇总检索结果
func (e *Engine) collect(ctx context.Context, kws []string) []dm.Article {
	today := time.Now().Format(time.DateOnly)
	var articles []dm.Article

	for _, kw := range kws {
		logger.Log.Infof("正在搜索关键词: %s", kw)

		req := &search.Request{
			Keyword:    kw,
			Language:   e.cfg.Search.NewsData.Language,
			Category:   e.cfg.Search.NewsData.Category,
			MaxResults: e.cfg.Search.MaxResults,
		}

		resp, err := e.searcher.Search(ctx, req)
		if err != nil {
			logger.Log.Errorf("搜索关键词失败 [%s]: %v", kw, err)
			continue
		}
		if len(resp.Results) == 0 {
			logger.Log.Warnf("关键词 [%s] 未找到文章", kw)
			continue
		}

		for _, item := range resp.Results {
			articles = append(articles, dm.Article{
				Date:        today,
				Keyword:     kw,
				Title:       item.Title,
				Description: item.Description,
				URL:         item.URL,
			})
		}
		logger.Log.Infof("关键词 [%s] 找到 %d 篇文章", kw, len(resp.Results))
	}

	return articles
}

// triage 逐个 URL 抽取正文并评级，失败条目跳过
func (e *Engine) triage(ctx context.Context, articles []dm.Article) []dm.RatedArticle {
	var rated []dm.RatedArticle

	for _, a := range articles {
		logger.Log.Infof("正在处理: %s", a.URL)

		content, err := e.extractor.Extract(a.URL)
		if err != nil {
			logger.Log.Errorf("正文抽取失败 [%s]: %v", a.URL, err)
			continue
		}
		content.Text = truncate(content.Text, maxContentLen)

		analysis, err := e.rater.Rate(ctx, content)
		if err != nil {
			logger.Log.Errorf("评级失败 [%s]: %v", a.URL, err)
			continue
		}
		if !rater.ValidTier(analysis.Rating) {
			logger.Log.Warnf("未知评级值 [%s]: %q", a.URL, analysis.Rating)
		}

		rated = append(rated, dm.RatedArticle{Article: a, Analysis: *analysis})
		logger.Log.Infof("已完成: %s (Rating: %s)", a.Title, analysis.Rating)
	}

	return rated
}

// truncate 在不超过 max 字节处截断，且不切断多字节字符
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func (e *Engine) saveToDB(rated []dm.RatedArticle) error {
	runID, err := e.sink.CreateRun()
	if err != nil {
		return err
	}
	if err := e.sink.SaveRated(runID, rated); err != nil {
		return err
	}
	logger.Log.Infof("评级结果已保存到数据库 (run %d)", runID)
	return nil
}
