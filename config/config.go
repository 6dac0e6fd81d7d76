package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      App      `json:"app" yaml:"app"`
	Server   Server   `json:"server" yaml:"server"`
	MySQL    MySQL    `json:"mysql" yaml:"mysql"`
	Redis    Redis    `json:"redis" yaml:"redis"`
	Jwt      Jwt      `json:"jwt" yaml:"jwt"`
	Push     Push     `json:"push" yaml:"push"`
	Reminder Reminder `json:"reminder" yaml:"reminder"`
}

type Server struct {
	Http int `json:"http" yaml:"http" env:"SERVER_HTTP"`
}

func New(filename string) *Config {
	// .env 可选，VAPID 密钥一般放在这里
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(err)
	}
	return conf
}

// Parse 解析 yaml 内容并应用环境变量覆盖
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}
	if err := cleanenv.UpdateEnv(&conf); err != nil {
		return nil, fmt.Errorf("读取环境变量错误: %w", err)
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Http == 0 {
		c.Server.Http = 8000
	}
	if c.Push.TTL == 0 {
		c.Push.TTL = 86400
	}
	if c.Push.Timeout == 0 {
		c.Push.Timeout = 10 * time.Second
	}
	if c.Push.RetryAttempts == 0 {
		c.Push.RetryAttempts = 3
	}
	if c.Push.RetryDelay == 0 {
		c.Push.RetryDelay = 500 * time.Millisecond
	}
	if c.Push.Concurrency == 0 {
		c.Push.Concurrency = 4
	}
	if c.Push.Icon == "" {
		c.Push.Icon = "/icon-192.svg"
	}
	if c.Reminder.Interval == 0 {
		c.Reminder.Interval = time.Minute
	}
	if c.Reminder.Window == 0 {
		c.Reminder.Window = 1
	}
	if c.Reminder.LockTTL == 0 {
		c.Reminder.LockTTL = 50 * time.Second
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
