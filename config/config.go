package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log 日志输出与滚动策略
type Log struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Viewport 没有窗口尺寸来源的前端使用的默认视口
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config 运行配置（难度曲线不在此列，固定写死）
type Config struct {
	Addr       string   `yaml:"addr"`
	WebRoot    string   `yaml:"web_root"`
	FPS        int      `yaml:"fps"`
	SendBuffer int      `yaml:"send_buffer"`
	Seed       uint64   `yaml:"seed"`
	Log        Log      `yaml:"log"`
	Viewport   Viewport `yaml:"viewport"`
}

// Default 默认配置
func Default() Config {
	return Config{
		Addr:       ":8080",
		WebRoot:    "web",
		FPS:        60,
		SendBuffer: 64,
		Log: Log{
			File:       "app.log",
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Viewport: Viewport{Width: 960, Height: 540},
	}
}

// Load 先取默认值，path 非空时用 YAML 文件覆盖，最后校验
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate 检查取值范围
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is empty"))
	}
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps %d out of range [1,240]", c.FPS))
	}
	if c.SendBuffer < 1 {
		errs = append(errs, fmt.Errorf("send_buffer %d must be >= 1", c.SendBuffer))
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Errorf("log.level %q unknown", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.max_size_mb %d must be >= 1", c.Log.MaxSizeMB))
	}
	if c.Viewport.Width < 200 || c.Viewport.Height < 200 {
		errs = append(errs, fmt.Errorf("viewport %dx%d too small", c.Viewport.Width, c.Viewport.Height))
	}
	return errors.Join(errs...)
}
