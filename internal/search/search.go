package search

import "context"

// Searcher 定义通用的新闻搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Keyword    string
	Language   string // 例如 "en"
	Category   string // 例如 "technology"
	MaxResults int    // 单个关键词的结果上限，分页拉取直到耗尽或达到上限
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Description   string
	PublishedDate string
}
