package xllm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func newClient(url string) LLM {
	return NewOpenAI(
		WithAPIUrl(url),
		WithAPIKey("test-key"),
		WithModel("test-model"),
		WithTimeout(5*time.Second),
	)
}

func completionBody(content string) string {
	body := `{"choices":[{"message":{"role":"assistant","content":""}}]}`
	body, _ = sjson.Set(body, "choices.0.message.content", content)
	return body
}

func TestChatSuccess(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("请求路径错误: %s", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  你好！  \n")))
	}))
	defer srv.Close()

	reply, err := newClient(srv.URL).Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a helpful AI assistant."},
		{Role: RoleUser, Content: "你好"},
	})
	if err != nil {
		t.Fatalf("Chat 失败: %v", err)
	}
	// 回复应去除首尾空白
	if reply != "你好！" {
		t.Errorf("回复错误，期望 %q，实际 %q", "你好！", reply)
	}

	// 请求体应携带 model / messages / stream:false
	if got := gjson.Get(gotBody, "model").String(); got != "test-model" {
		t.Errorf("model 错误: %q", got)
	}
	if gjson.Get(gotBody, "stream").Bool() {
		t.Error("stream 应为 false")
	}
	if n := gjson.Get(gotBody, "messages.#").Int(); n != 2 {
		t.Errorf("messages 条数错误，期望 2，实际 %d", n)
	}
	if got := gjson.Get(gotBody, "messages.0.role").String(); got != RoleSystem {
		t.Errorf("首条消息角色错误: %q", got)
	}
}

func TestChatUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("期望 ErrUnexpectedShape，实际 %v", err)
	}
}

func TestChatBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("期望 ErrBadResponse，实际 %v", err)
	}
}

func TestChatNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("期望 ErrRequestFailed，实际 %v", err)
	}
}

func TestChatUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newClient(url).Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("期望 ErrRequestFailed，实际 %v", err)
	}
}

func TestFallback(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrRequestFailed, "Failed to get response from AI model."},
		{ErrUnexpectedShape, "Sorry, I couldn't generate a response."},
		{ErrBadResponse, "Error processing AI response."},
		{errors.New("其他错误"), "Failed to get response from AI model."},
	}
	for _, c := range cases {
		if got := Fallback(c.err); got != c.want {
			t.Errorf("Fallback(%v) 期望 %q，实际 %q", c.err, c.want, got)
		}
	}
}
