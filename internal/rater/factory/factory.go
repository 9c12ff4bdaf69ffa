package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/news_triage/internal/clipboard"
	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/rater"
	"github.com/iWorld-y/news_triage/internal/rater/fabric"
	"github.com/iWorld-y/news_triage/internal/rater/openai"
)

// NewRater 根据配置创建评级器实例
// fabric 依赖系统剪贴板，不可用时直接返回错误，由调用方在启动阶段终止
func NewRater(ctx context.Context, cfg *config.Config) (rater.Rater, error) {
	provider := cfg.Rater.Provider
	if provider == "" {
		provider = "fabric"
	}

	switch provider {
	case "fabric":
		board, err := clipboard.New()
		if err != nil {
			return nil, err
		}
		return fabric.NewRater(cfg.Rater.Fabric, board), nil

	case "openai":
		if cfg.Rater.LLM.APIKey == "" {
			return nil, fmt.Errorf("llm api key is missing")
		}
		return openai.NewRater(ctx, cfg.Rater.LLM)

	default:
		return nil, fmt.Errorf("unknown rater provider: %s", provider)
	}
}
