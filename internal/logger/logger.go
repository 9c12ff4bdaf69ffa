package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例
var Log *logrus.Logger

// levelTags 各级别的定宽标签
var levelTags = map[logrus.Level]string{
	logrus.TraceLevel: "TRAC",
	logrus.DebugLevel: "DEBU",
	logrus.InfoLevel:  "INFO",
	logrus.WarnLevel:  "WARN",
	logrus.ErrorLevel: "ERRO",
	logrus.FatalLevel: "FATA",
	logrus.PanicLevel: "PANI",
}

// CustomFormatter 自定义日志格式
type CustomFormatter struct{}

// Format 实现 logrus.Formatter 接口
// 输出格式: [TIME] [LEVEL] [FILE:LINE] MSG
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var fileLine string
	if entry.HasCaller() {
		fileName := filepath.Base(entry.Caller.File)
		fileLine = fmt.Sprintf("%s:%d", fileName, entry.Caller.Line)
	}

	tag, ok := levelTags[entry.Level]
	if !ok {
		tag = "UNKN"
	}

	timeStr := entry.Time.Format("2006-01-02 15:04:05")

	return []byte(fmt.Sprintf("[%s] [%s] [%s] %s\n", timeStr, tag, fileLine, entry.Message)), nil
}

// InitLogger 初始化日志，级别非法时回退到 info
// filePath 非空时同时写入日志文件（目录不存在会自动创建）
func InitLogger(levelStr string, filePath string) error {
	Log = logrus.New()

	// ReportCaller 用于在日志中带上文件名和行号
	Log.SetReportCaller(true)
	Log.SetFormatter(&CustomFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	Log.SetOutput(io.MultiWriter(writers...))

	return nil
}
