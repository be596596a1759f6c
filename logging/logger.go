// Package logging 构造 log/slog 日志器。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// Options 描述日志器参数。
type Options struct {
	Level  string
	Format string    // console、json 或 auto
	Writer io.Writer // 默认 os.Stderr
	RunID  string    // 为空时自动生成
}

// New 按选项构造日志器，并附带 run_id 字段。
func New(opts Options) (*slog.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	switch resolveFormat(opts.Format, w) {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "console":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return slog.New(handler).With(slog.String("run_id", runID)), nil
}

// Discard 返回丢弃所有输出的日志器，用于测试。
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel 解析日志级别，空字符串视为 info。
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}

// resolveFormat 将 auto 解析为 console（终端）或 json（非终端）。
func resolveFormat(format string, w io.Writer) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "console"
	}
	if format != "auto" {
		return format
	}
	if isTerminal(w) {
		return "console"
	}
	return "json"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
