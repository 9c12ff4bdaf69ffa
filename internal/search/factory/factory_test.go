package factory

import (
	"testing"

	"github.com/iWorld-y/news_triage/internal/config"
)

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SearchConfig
		wantErr bool
	}{
		{
			name:    "default provider without key",
			cfg:     config.SearchConfig{},
			wantErr: true,
		},
		{
			name:    "newsdata with key",
			cfg:     config.SearchConfig{Provider: "newsdata", NewsData: config.NewsDataConfig{APIKey: "k"}},
			wantErr: false,
		},
		{
			name:    "tavily with key",
			cfg:     config.SearchConfig{Provider: "tavily", Tavily: config.TavilyConfig{APIKey: "k"}},
			wantErr: false,
		},
		{
			name:    "tavily without key",
			cfg:     config.SearchConfig{Provider: "tavily"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     config.SearchConfig{Provider: "bing"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSearcher(&config.Config{Search: tt.cfg})
			if tt.wantErr {
				if err == nil {
					t.Error("NewSearcher() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSearcher() error = %v", err)
			}
			if s == nil {
				t.Error("NewSearcher() returned nil searcher")
			}
		})
	}
}
