package rater

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iWorld-y/news_triage/internal/model"
)

// Rater 对抽取出的文章内容进行 AI 评级
type Rater interface {
	Rate(ctx context.Context, content *model.Content) (*model.Analysis, error)
}

// FormatContent 把抽取结果拼装为评级输入文本
func FormatContent(content *model.Content) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", content.Title)
	if content.Byline != "" {
		fmt.Fprintf(&sb, "Byline: %s\n", content.Byline)
	}
	if content.Excerpt != "" {
		fmt.Fprintf(&sb, "Excerpt: %s\n", content.Excerpt)
	}
	fmt.Fprintf(&sb, "URL: %s\n\n", content.URL)
	sb.WriteString(content.Text)
	return sb.String()
}

// ParseAnalysis 解析评级输出的 JSON，容忍包裹的 markdown 代码块标记
func ParseAnalysis(raw string) (*model.Analysis, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(clean), &analysis); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w, content: %s", err, clean)
	}
	return &analysis, nil
}

// ValidTier 评级首字母为 S/A/B/C/D 视为合法
// 非法值不会阻断流程，由调用方记录日志后原样保留
func ValidTier(rating string) bool {
	rating = strings.TrimSpace(rating)
	if rating == "" {
		return false
	}
	switch rating[0] {
	case 'S', 'A', 'B', 'C', 'D':
		return true
	}
	return false
}
