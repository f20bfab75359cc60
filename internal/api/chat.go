package api

import (
	"net/http"

	"github.com/daodao97/xgo/xlog"
	"github.com/gin-gonic/gin"

	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/pkg/xllm"
)

type ChatReq struct {
	Message        string `json:"message"`
	ConversationId *int64 `json:"conversation_id"`
}

type ChatResp struct {
	Reply          string `json:"reply"`
	ConversationId int64  `json:"conversation_id"`
}

// Chat 处理一轮对话：读历史 -> 追加用户消息 -> 调用模型 -> 追加回复 -> 落库。
// 同一会话的并发请求没有加锁，读-改-写交错时后写覆盖先写
func (h *Handler) Chat(c *gin.Context) {
	var req ChatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is missing."})
		return
	}

	ctx := c.Request.Context()

	history := []xllm.Message{}
	var conversationId int64
	if req.ConversationId != nil {
		conversationId = *req.ConversationId
		var err error
		history, err = h.store.Get(conversationId)
		if err != nil {
			xlog.ErrorC(ctx, "读取会话历史失败", xlog.Any("id", conversationId), xlog.Err(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID."})
			return
		}
	}

	history = append(history, xllm.Message{Role: xllm.RoleUser, Content: req.Message})

	// 系统提示词只进请求，不落库
	outbound := make([]xllm.Message, 0, len(history)+1)
	if h.systemPrompt != "" {
		outbound = append(outbound, xllm.Message{Role: xllm.RoleSystem, Content: h.systemPrompt})
	}
	outbound = append(outbound, history...)

	reply, err := h.llm.Chat(ctx, outbound)
	if err != nil {
		// 模型侧失败不会变成 HTTP 错误，固定文案照常入库并返回
		reply = xllm.Fallback(err)
	}

	history = append(history, xllm.Message{Role: xllm.RoleAssistant, Content: reply})

	if req.ConversationId == nil {
		conversationId, err = h.store.Create()
		if err != nil {
			xlog.ErrorC(ctx, "创建会话失败", xlog.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create new conversation."})
			return
		}
	}

	if err := h.store.Update(conversationId, history); err != nil {
		xlog.ErrorC(ctx, "保存会话失败", xlog.Any("id", conversationId), xlog.Err(err))
	}

	c.JSON(http.StatusOK, ChatResp{
		Reply:          reply,
		ConversationId: conversationId,
	})
}
