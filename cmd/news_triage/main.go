package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/engine"
	"github.com/iWorld-y/news_triage/internal/extract"
	"github.com/iWorld-y/news_triage/internal/logger"
	raterfactory "github.com/iWorld-y/news_triage/internal/rater/factory"
	searchfactory "github.com/iWorld-y/news_triage/internal/search/factory"
	"github.com/iWorld-y/news_triage/internal/storage/csvstore"
	"github.com/iWorld-y/news_triage/internal/storage/postgres"
)

const apiKeyHelp = `NewsData.io API key not found!

Please set your API key as an environment variable:

For macOS/Linux:
    export NEWSDATA_API_KEY='your_api_key_here'

For Windows (PowerShell):
    $env:NEWSDATA_API_KEY='your_api_key_here'

You can add this to your shell's startup file (.bashrc, .zshrc, etc.)
to make it permanent.`

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// .env 中的变量仅作为缺省值，不覆盖已有环境变量
	_ = godotenv.Load()

	// 1. 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 验证配置：缺少 API key 直接终止，后续不会发出任何网络请求
	if cfg.Search.Provider == "" || cfg.Search.Provider == "newsdata" {
		if cfg.Search.NewsData.APIKey == "" {
			log.Fatal(apiKeyHelp)
		}
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动新闻采集评级...")

	ctx := context.Background()

	// 3. 初始化搜索客户端
	searcher, err := searchfactory.NewSearcher(cfg)
	if err != nil {
		logger.Log.Fatalf("搜索客户端初始化失败: %v", err)
	}

	// 4. 初始化评级器（fabric 模式会检查剪贴板工具是否可用）
	r, err := raterfactory.NewRater(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("评级器初始化失败: %v", err)
	}

	// 5. 初始化数据库连接（可选）
	var sink engine.Sink
	if cfg.DB.Host != "" {
		store, err := postgres.NewStorage(cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅输出 CSV 文件。", err)
		} else {
			defer store.Close()
			sink = store
			logger.Log.Info("已成功连接到数据库")
		}
	}

	// 6. 执行流水线
	eng := engine.NewEngine(cfg, searcher, extract.NewExtractor(0), r, csvstore.NewStore(cfg.Output), sink)
	if err := eng.Run(ctx); err != nil {
		logger.Log.Fatalf("运行失败: %v", err)
	}

	logger.Log.Info("✅ 采集评级完成")
}
