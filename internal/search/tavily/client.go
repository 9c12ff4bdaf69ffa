package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iWorld-y/news_triage/internal/search"
)

const defaultBaseURL = "https://api.tavily.com/search"

// Client Tavily API 客户端，作为 NewsData.io 之外的备选搜索源
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 Tavily 客户端
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// searchRequest Tavily 搜索请求参数
type searchRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"` // basic or advanced
	Topic       string `json:"topic,omitempty"`        // general or news
	MaxResults  int    `json:"max_results,omitempty"`
}

// searchResponse Tavily 搜索响应
type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

// searchResult 单个搜索结果
type searchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

// Search 执行搜索。Tavily 不支持游标翻页，单次请求直接带上结果上限
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = 5
	}

	payload, err := json.Marshal(searchRequest{
		Query:       req.Keyword,
		SearchDepth: "basic",
		Topic:       "news",
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Add("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Add("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily api error (status %d): %s", res.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	var results []search.Result
	for _, r := range searchResp.Results {
		results = append(results, search.Result{
			Title:         r.Title,
			URL:           r.URL,
			Description:   r.Content,
			PublishedDate: r.PublishedDate,
		})
	}

	return &search.Response{Results: results}, nil
}
