package xllm

import (
	"context"
	"errors"
)

const (
	RoleUser      string = "user"
	RoleAssistant string = "assistant"
	RoleSystem    string = "system"
)

// Message 一条对话消息，与 OpenAI chat completions 的消息结构一致
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type LLM interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// 三类终态失败，互不重试。传输层细节只进日志，
// 由 Fallback 在 handler 边界换成固定的兜底文案
var (
	ErrRequestFailed   = errors.New("llm request failed")
	ErrBadResponse     = errors.New("llm response body is not valid json")
	ErrUnexpectedShape = errors.New("llm response missing choices.0.message.content")
)

const (
	fallbackRequestFailed   = "Failed to get response from AI model."
	fallbackUnexpectedShape = "Sorry, I couldn't generate a response."
	fallbackBadResponse     = "Error processing AI response."
)

// Fallback 把客户端错误映射为对应的兜底回复
func Fallback(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedShape):
		return fallbackUnexpectedShape
	case errors.Is(err, ErrBadResponse):
		return fallbackBadResponse
	default:
		return fallbackRequestFailed
	}
}
