package cmd

import (
	"io"
	"os"

	"github.com/haierkeys/note-timeline-codec/global"
	"github.com/haierkeys/note-timeline-codec/internal/app"
	"github.com/haierkeys/note-timeline-codec/pkg/fileurl"
	"github.com/haierkeys/note-timeline-codec/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var configFlag string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file path // 配置文件路径")
}

// setup locates the configuration, writing out the embedded default on
// first run, and installs the process logger
// setup 定位配置文件，首次运行时写出内嵌默认配置，并安装进程日志器
func setup() (*app.AppConfig, error) {
	configFile := configFlag
	if len(configFile) <= 0 {
		if fileurl.IsExist("config.yaml") {
			configFile = "config.yaml"
		} else if fileurl.IsExist("config/config.yaml") {
			configFile = "config/config.yaml"
		} else if fileurl.IsExist(global.ROOT + "config.yaml") {
			// fall back to the executable's directory
			// 回退到可执行文件所在目录
			configFile = global.ROOT + "config.yaml"
		} else {
			bootstrapLogger.Warn("config file not found, creating default config")
			configFile = "config/config.yaml"

			if err := fileurl.CreatePath(configFile, os.ModePerm); err != nil {
				return nil, errors.Wrap(err, "config file auto create error")
			}
			if err := os.WriteFile(configFile, []byte(configDefault), 0666); err != nil {
				return nil, errors.Wrap(err, "config file auto create writing error")
			}
			bootstrapLogger.Info("config file auto create successfully", zap.String("path", configFile))
		}
	}

	cfg, realpath, err := app.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	lg, err := logger.NewLogger(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		Production: cfg.Log.Production,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}
	global.SetLogger(lg)
	global.Log().Debug("config loaded", zap.String("path", realpath))

	return cfg, nil
}

// readStored reads the stored notes string from a file, or from stdin
// when no file is given
// readStored 从文件读取存储的笔记字符串，未指定文件时读取标准输入
func readStored(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin failed")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Wrap(err, "read stored notes failed")
	}
	return string(data), nil
}

// writeStored persists the stored notes string back to its file
// writeStored 将存储的笔记字符串写回文件
func writeStored(file string, stored string) error {
	if err := os.WriteFile(file, []byte(stored), 0644); err != nil {
		return errors.Wrap(err, "write stored notes failed")
	}
	return nil
}
