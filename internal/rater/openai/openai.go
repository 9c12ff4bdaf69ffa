package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/news_triage/internal/config"
	dm "github.com/iWorld-y/news_triage/internal/model"
	"github.com/iWorld-y/news_triage/internal/rater"
)

// 与 fabric label_and_rate 输出保持相同的 JSON 契约
const prompt = `你是一个资深的行业新闻分析师。请阅读用户提供的文章内容，为其打上标签并评级。
请务必严格按照以下 JSON 格式返回，不要包含任何 markdown 标记：
{
	"one-sentence-summary": "一句话英文摘要（25 词以内）",
	"labels": "逗号分隔的英文标签，例如 CyberSecurity, Compliance, Privacy",
	"rating": "S Tier | A Tier | B Tier | C Tier | D Tier",
	"rating-explanation": ["评级理由1", "评级理由2"],
	"quality-score": 85,
	"quality-score-explanation": ["质量分理由1", "质量分理由2"]
}
评级说明：S 为必读，A 为应读，B 为可读，C 为参考，D 为可忽略。quality-score 为 1-100 的整数。`

// Rater 直连 OpenAI 兼容接口的评级器，作为 fabric 的替代实现
type Rater struct {
	chatModel model.ChatModel
	limiter   *rate.Limiter
}

// NewRater 创建 LLM 评级器
func NewRater(ctx context.Context, cfg config.LLMConfig) (*Rater, error) {
	chatModel, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	rpm := cfg.RPM
	if rpm == 0 {
		rpm = 60
	}
	qps := cfg.QPS
	if qps == 0 {
		qps = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps)

	return &Rater{chatModel: chatModel, limiter: limiter}, nil
}

// Ensure Rater implements rater.Rater
var _ rater.Rater = (*Rater)(nil)

// Rate 调用 LLM 评级（带 429 指数退避重试）
func (r *Rater) Rate(ctx context.Context, content *dm.Content) (*dm.Analysis, error) {
	maxRetries := 3
	baseDelay := 2 * time.Second
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		messages := []*schema.Message{
			{Role: schema.System, Content: "你是一个 JSON 生成器。请只输出 JSON 字符串。"},
			{Role: schema.User, Content: prompt + "\n\n文章内容：\n" + rater.FormatContent(content)},
		}

		resp, err := r.chatModel.Generate(ctx, messages)
		if err != nil {
			if strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "too many requests") {
				lastErr = err
				if i < maxRetries {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(baseDelay * time.Duration(1<<i)):
						continue
					}
				}
			}
			return nil, err
		}

		analysis, err := rater.ParseAnalysis(resp.Content)
		if err != nil {
			lastErr = err
			if i < maxRetries {
				continue
			}
			return nil, lastErr
		}
		return analysis, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %v", lastErr)
}
