package conf

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/daodao97/xgo/xapp"
	"github.com/daodao97/xgo/xdb"

	"github.com/daodao97/xgo/xlog"
)

type LLMConfig struct {
	Provider       string `yaml:"provider" default:"openai"`
	ApiUrl         string `yaml:"api_url" env:"LM_STUDIO_URL" default:"http://localhost:1234/v1"`
	ApiKey         string `yaml:"api_key" env:"LM_STUDIO_API_KEY"`
	Model          string `yaml:"model" default:"your-model-name"`
	SystemPrompt   string `yaml:"system_prompt" default:"You are a helpful AI assistant."`
	TimeoutSeconds int    `yaml:"timeout_seconds" default:"3000"`
}

// Timeout 推理请求的超时时间，默认值刻意放得很大
func (l *LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

type config struct {
	Debug    bool         `yaml:"debug" env:"DEBUG"`
	LLM      *LLMConfig   `yaml:"llm"`
	Database []xdb.Config `yaml:"database" envPrefix:"DATABASE"`
}

func (c *config) Print() {
	xlog.Debug("load config", slog.Any("config", fmt.Sprintf("%+v", c)))
}

var _c *config

func Get() *config {
	return _c
}

func InitConf() error {
	_c = &config{
		LLM: &LLMConfig{},
	}

	if err := xapp.InitConf(_c); err != nil {
		return err
	}

	// 没配数据库时落到本地 sqlite 文件
	if len(_c.Database) == 0 {
		_c.Database = []xdb.Config{
			{Name: "default", Driver: "sqlite3", DSN: "chatbot.db"},
		}
	}

	_c.Print()

	return nil
}
