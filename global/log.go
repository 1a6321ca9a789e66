package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

// Logger 进程级日志器，由命令入口在配置加载后注入
var Logger *zap.Logger

func Log() *zap.Logger {
	return Logger
}

// SetLogger replaces the process logger
// SetLogger 替换进程级日志器
func SetLogger(l *zap.Logger) {
	Logger = l
}

func Dump(a ...any) {
	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
