package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/iWorld-y/news_triage/internal/search"
)

const defaultBaseURL = "https://newsdata.io/api/1/news"

// Client NewsData.io API 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 NewsData.io 客户端
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// apiResponse NewsData.io 响应结构
type apiResponse struct {
	Status       string      `json:"status"`
	TotalResults int         `json:"totalResults"`
	Results      []apiResult `json:"results"`
	NextPage     string      `json:"nextPage"`
}

// apiResult 单条结果
type apiResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
}

// Search 按关键词搜索新闻，沿 nextPage 游标翻页直到耗尽或达到 MaxResults
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("newsdata api key is missing")
	}

	var results []search.Result
	page := ""

	for {
		resp, err := c.fetchPage(ctx, req, page)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Results {
			results = append(results, search.Result{
				Title:         item.Title,
				URL:           item.Link,
				Description:   item.Description,
				PublishedDate: item.PubDate,
			})
			if req.MaxResults > 0 && len(results) >= req.MaxResults {
				return &search.Response{Results: results}, nil
			}
		}

		if resp.NextPage == "" || len(resp.Results) == 0 {
			break
		}
		page = resp.NextPage
	}

	return &search.Response{Results: results}, nil
}

// fetchPage 拉取单页结果
func (c *Client) fetchPage(ctx context.Context, req *search.Request, page string) (*apiResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("q", req.Keyword)
	if req.Language != "" {
		q.Set("language", req.Language)
	}
	if req.Category != "" {
		q.Set("category", req.Category)
	}
	if page != "" {
		q.Set("page", page)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

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
		return nil, fmt.Errorf("newsdata api error (status %d): %s", res.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	if apiResp.Status != "success" {
		return nil, fmt.Errorf("newsdata api request failed: %s", string(body))
	}

	return &apiResp, nil
}
