package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile 命令行默认读取的配置文件
const DefaultFile = "dxf.toml"

type LogConfig struct {
	Level string `toml:"level"`
}

type InputConfig struct {
	CodePage string `toml:"code_page"`
}

type OutputConfig struct {
	Format string `toml:"format"` // text | json | yaml
}

type BBoxConfig struct {
	Gap     float64 `toml:"gap"`     // 合并包围盒的容差
	Epsilon float64 `toml:"epsilon"` // 浮点比较精度
}

type CSVConfig struct {
	Path string `toml:"path"` // 为空时与输入文件同名
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	BBox   BBoxConfig   `toml:"bbox"`
	CSV    CSVConfig    `toml:"csv"`
}

func defaults() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: "text"},
		BBox:   BBoxConfig{Gap: 0, Epsilon: 1e-6},
	}
}

// Load 读取 toml 配置，文件不存在时返回默认值
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return level, nil
}

// Logger 按配置的级别输出文本日志
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
