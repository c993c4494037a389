// internal/log/logger.go

// Package log 提供全程式共用的分級日誌（基於 log/slog）。
// 日誌一律寫到 stderr，stdout 保留給指令的實際輸出結果。
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel 為設定檔與旗標使用的日誌等級字串。
type LogLevel string

const (
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

var (
	mu           sync.RWMutex
	logger       *slog.Logger
	currentLevel slog.Level
	output       io.Writer = os.Stderr
)

func init() {
	_ = SetLevel(LevelInfo)
}

// SetLevel 設定日誌等級；未知等級回傳錯誤且不改變現有設定。
func SetLevel(level LogLevel) error {
	var l slog.Level
	switch level {
	case LevelError:
		l = slog.LevelError
	case LevelWarn:
		l = slog.LevelWarn
	case LevelInfo:
		l = slog.LevelInfo
	case LevelDebug:
		l = slog.LevelDebug
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	mu.Lock()
	defer mu.Unlock()
	currentLevel = l
	logger = slog.New(NewHandler(output, currentLevel))
	return nil
}

// ParseLevel 將字串（不分大小寫）轉為 LogLevel。
func ParseLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return level, nil
	default:
		return "", fmt.Errorf("invalid log level: %s", s)
	}
}

// SetOutput 改變日誌輸出目的地（測試時導向 buffer）。
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = slog.New(NewHandler(output, currentLevel))
}

// Logger 回傳目前的 *slog.Logger，供需要注入 logger 的元件使用。
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Error(msg string, args ...any) { Logger().Error(msg, args...) }

func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

func Info(msg string, args ...any) { Logger().Info(msg, args...) }

func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// IsDebugEnabled 回報目前是否輸出 debug 日誌。
func IsDebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel <= slog.LevelDebug
}
