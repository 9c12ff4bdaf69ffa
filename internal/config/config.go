package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	KeywordsFile string       `yaml:"keywords_file"`
	Search       SearchConfig `yaml:"search"`
	Rater        RaterConfig  `yaml:"rater"`
	Output       OutputConfig `yaml:"output"`
	Log          LogConfig    `yaml:"log"`
	DB           DBConfig     `yaml:"db"`
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider   string         `yaml:"provider"` // newsdata 或 tavily
	MaxResults int            `yaml:"max_results"`
	NewsData   NewsDataConfig `yaml:"newsdata"`
	Tavily     TavilyConfig   `yaml:"tavily"`
}

// NewsDataConfig NewsData.io 配置
type NewsDataConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
	Category string `yaml:"category"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// RaterConfig AI 评级相关配置
type RaterConfig struct {
	Provider string       `yaml:"provider"` // fabric 或 openai
	Fabric   FabricConfig `yaml:"fabric"`
	LLM      LLMConfig    `yaml:"llm"`
}

// FabricConfig fabric 命令行工具配置
type FabricConfig struct {
	Command string `yaml:"command"` // 默认 fabric
	Pattern string `yaml:"pattern"` // 默认 label_and_rate
	Timeout int    `yaml:"timeout"` // 单位秒，默认 15
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	QPS     int    `yaml:"qps"`
	RPM     int    `yaml:"rpm"`
}

// OutputConfig 输出文件路径配置
type OutputConfig struct {
	ResultsFile string `yaml:"results_file"` // 原始结果 CSV
	URLsFile    string `yaml:"urls_file"`    // URL 列表
	RatedFile   string `yaml:"rated_file"`   // 评级结果 CSV
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DBConfig 数据库相关配置
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// LoadConfig 从指定路径加载配置，并应用环境变量与默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 环境变量优先于配置文件
	if key := os.Getenv("NEWSDATA_API_KEY"); key != "" {
		cfg.Search.NewsData.APIKey = key
	}
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		cfg.Search.Tavily.APIKey = key
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.KeywordsFile == "" {
		c.KeywordsFile = "keywords.csv"
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 50
	}
	if c.Search.NewsData.Language == "" {
		c.Search.NewsData.Language = "en"
	}
	if c.Search.NewsData.Category == "" {
		c.Search.NewsData.Category = "technology"
	}
	if c.Rater.Provider == "" {
		c.Rater.Provider = "fabric"
	}
	if c.Rater.Fabric.Command == "" {
		c.Rater.Fabric.Command = "fabric"
	}
	if c.Rater.Fabric.Pattern == "" {
		c.Rater.Fabric.Pattern = "label_and_rate"
	}
	if c.Rater.Fabric.Timeout == 0 {
		c.Rater.Fabric.Timeout = 15
	}
	if c.Output.ResultsFile == "" {
		c.Output.ResultsFile = "grcdata.csv"
	}
	if c.Output.URLsFile == "" {
		c.Output.URLsFile = "urls.csv"
	}
	if c.Output.RatedFile == "" {
		c.Output.RatedFile = "grcdata_rated.csv"
	}
}
