package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// 1. 创建临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := "log:\n  file: storage/logs/codec.log\n"
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	// 2. 加载配置，未给出的字段由默认值填充
	cfg, realpath, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, realpath, cfg.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "storage/logs/codec.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfigInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := "output:\n  format: xml\n"
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	_, _, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigSave(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(tmpFile, []byte("output:\n  format: text\n"), 0644))

	cfg, _, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	// 修改配置并保存，重新加载后应保留修改
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.Save())

	reloaded, _, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", reloaded.Log.Level)
	assert.Equal(t, "text", reloaded.Output.Format)
}
