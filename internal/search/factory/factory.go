package factory

import (
	"fmt"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/search"
	"github.com/iWorld-y/news_triage/internal/search/newsdata"
	"github.com/iWorld-y/news_triage/internal/search/tavily"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	provider := cfg.Search.Provider
	if provider == "" {
		provider = "newsdata"
	}

	switch provider {
	case "newsdata":
		if cfg.Search.NewsData.APIKey == "" {
			return nil, fmt.Errorf("newsdata api key is missing: set NEWSDATA_API_KEY or search.newsdata.api_key")
		}
		return newsdata.NewClient(cfg.Search.NewsData.APIKey), nil

	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
