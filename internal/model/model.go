package model

// Article 单条新闻检索结果
type Article struct {
	Date        string // 运行日期 YYYY-MM-DD
	Keyword     string // 命中的搜索关键词
	Title       string
	Description string
	URL         string
}

// Valid 所有字段非空才写入结果文件
func (a Article) Valid() bool {
	return a.Date != "" && a.Keyword != "" && a.Title != "" && a.Description != "" && a.URL != ""
}

// Content 抽取后的文章正文
type Content struct {
	Title   string
	Byline  string
	Excerpt string
	Text    string
	URL     string
}

// Analysis AI 分析结果，字段名与 fabric label_and_rate 输出保持一致
type Analysis struct {
	Summary        string   `json:"one-sentence-summary"`
	Labels         string   `json:"labels"`
	Rating         string   `json:"rating"`
	RatingExplain  []string `json:"rating-explanation"`
	QualityScore   int      `json:"quality-score"`
	QualityExplain []string `json:"quality-score-explanation"`
}

// RatedArticle 文章元数据 + AI 分析结果
type RatedArticle struct {
	Article
	Analysis
}
