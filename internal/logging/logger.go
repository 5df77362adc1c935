package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger 全局日志实例，未调用 Init 时使用 info 级别输出到 stderr
var Logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
}

// Init 按级别名（debug/info/warn/error）初始化全局日志，无法识别时退回 info
func Init(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	Logger = newLogger(os.Stderr, lvl)
}

// SetOutput 测试或命令行中重定向输出
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal 记录错误并退出进程，仅在 cmd 入口使用
func Fatal(msg string, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// WithPrefix 返回带前缀的子日志
func WithPrefix(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}
