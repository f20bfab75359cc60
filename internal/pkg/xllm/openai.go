package xllm

import (
	"context"
	"strings"
	"time"

	"github.com/daodao97/xgo/xlog"
	"github.com/daodao97/xgo/xrequest"
	"github.com/tidwall/gjson"
)

type OpenAIOption func(*OpenAI)

func WithModel(model string) OpenAIOption {
	return func(o *OpenAI) {
		o.model = model
	}
}

func WithAPIUrl(apiUrl string) OpenAIOption {
	return func(o *OpenAI) {
		o.apiUrl = apiUrl
	}
}

func WithAPIKey(apiKey string) OpenAIOption {
	return func(o *OpenAI) {
		o.apiKey = apiKey
	}
}

func WithTimeout(timeout time.Duration) OpenAIOption {
	return func(o *OpenAI) {
		o.timeout = timeout
	}
}

type OpenAI struct {
	model   string
	apiKey  string
	apiUrl  string
	timeout time.Duration
}

func NewOpenAI(opts ...OpenAIOption) LLM {
	openai := &OpenAI{
		timeout: 3000 * time.Second,
	}
	for _, opt := range opts {
		opt(openai)
	}
	return openai
}

// Chat 同步调用 /chat/completions，返回首个 choice 的文本。
// 失败时返回 ErrRequestFailed / ErrBadResponse / ErrUnexpectedShape 之一
func (o *OpenAI) Chat(ctx context.Context, messages []Message) (string, error) {
	body := map[string]any{
		"model":    o.model,
		"messages": messages,
		"stream":   false,
	}

	req := xrequest.New().
		SetDebug(false).
		SetTimeout(o.timeout).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if o.apiKey != "" {
		req = req.SetHeader("Authorization", "Bearer "+o.apiKey)
	}

	request, err := req.Post(o.apiUrl + "/chat/completions")
	if err != nil {
		xlog.ErrorC(ctx, "LLM 请求失败", xlog.Err(err))
		return "", ErrRequestFailed
	}
	if err := request.Error(); err != nil {
		xlog.ErrorC(ctx, "LLM 返回非 2xx", xlog.Err(err))
		return "", ErrRequestFailed
	}

	raw := request.String()
	if !gjson.Valid(raw) {
		xlog.ErrorC(ctx, "LLM 响应不是合法 JSON", xlog.String("body", raw))
		return "", ErrBadResponse
	}

	content := gjson.Get(raw, "choices.0.message.content")
	if !content.Exists() {
		xlog.ErrorC(ctx, "LLM 响应缺少 choices.0.message.content", xlog.String("body", raw))
		return "", ErrUnexpectedShape
	}

	return strings.TrimSpace(content.String()), nil
}
