package extract

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/iWorld-y/news_triage/internal/model"
)

// 部分新闻站点会拦截默认 UA
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// 正文太短视为抽取失败，转入兜底解析
const minTextLen = 100

// Extractor 文章正文抽取器
type Extractor struct {
	timeout time.Duration
	client  *http.Client
}

// NewExtractor 创建抽取器
func NewExtractor(timeout time.Duration) *Extractor {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Extract 抓取 URL 并提取核心文本
// 优先使用 readability；失败或正文过短时回退到 goquery 兜底解析
func (e *Extractor) Extract(pageURL string) (*model.Content, error) {
	article, err := readability.FromURL(pageURL, e.timeout)
	if err == nil && len(article.TextContent) >= minTextLen {
		return &model.Content{
			Title:   article.Title,
			Byline:  article.Byline,
			Excerpt: article.Excerpt,
			Text:    strings.TrimSpace(article.TextContent),
			URL:     pageURL,
		}, nil
	}

	content, ferr := e.extractFallback(pageURL)
	if ferr != nil {
		if err != nil {
			return nil, fmt.Errorf("readability failed: %v; fallback failed: %w", err, ferr)
		}
		return nil, ferr
	}
	return content, nil
}

// extractFallback 用 goquery 提取标题、描述和段落文本
func (e *Extractor) extractFallback(pageURL string) (*model.Content, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page failed (status %d)", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page failed: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")

	var sb strings.Builder
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := strings.TrimSpace(sb.String())
	if len(text) < minTextLen {
		return nil, fmt.Errorf("page yielded too little text (%d bytes)", len(text))
	}

	return &model.Content{
		Title:   title,
		Excerpt: strings.TrimSpace(desc),
		Text:    text,
		URL:     pageURL,
	}, nil
}
