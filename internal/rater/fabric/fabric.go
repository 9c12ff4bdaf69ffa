package fabric

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/iWorld-y/news_triage/internal/config"
	"github.com/iWorld-y/news_triage/internal/model"
	"github.com/iWorld-y/news_triage/internal/rater"
)

// Board 剪贴板依赖，便于测试替换
type Board interface {
	Copy(text string) error
	Paste() (string, error)
}

// Rater 通过外部 fabric 命令行工具评级
// 文本先写入系统剪贴板，再从剪贴板读出喂给 fabric，与人工操作路径一致
type Rater struct {
	command string
	pattern string
	timeout time.Duration
	board   Board
}

// NewRater 创建 fabric 评级器
func NewRater(cfg config.FabricConfig, board Board) *Rater {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Rater{
		command: cfg.Command,
		pattern: cfg.Pattern,
		timeout: timeout,
		board:   board,
	}
}

// Ensure Rater implements rater.Rater
var _ rater.Rater = (*Rater)(nil)

// Rate 执行一次 fabric 评级
func (r *Rater) Rate(ctx context.Context, content *model.Content) (*model.Analysis, error) {
	if err := r.board.Copy(rater.FormatContent(content)); err != nil {
		return nil, err
	}

	text, err := r.board.Paste()
	if err != nil {
		return nil, err
	}

	// fabric 把结果写入 -o 指定的文件
	outFile, err := os.CreateTemp("", "fabric-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp output file: %w", err)
	}
	outPath := outFile.Name()
	outFile.Close()
	defer os.Remove(outPath)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.command, "-p", r.pattern, "-o", outPath)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("run %s failed: %w: %s", r.command, err, string(out))
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read fabric output: %w", err)
	}

	return rater.ParseAnalysis(string(raw))
}
