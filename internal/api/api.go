package api

import (
	"net/http"

	"github.com/daodao97/xgo/xlog"
	"github.com/gin-gonic/gin"

	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/dao"
	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/pkg/xllm"
)

// Handler 持有全部依赖，配置在启动时注入，业务逻辑不读全局状态
type Handler struct {
	store        *dao.ConversationStore
	llm          xllm.LLM
	systemPrompt string
}

func NewHandler(store *dao.ConversationStore, llm xllm.LLM, systemPrompt string) *Handler {
	return &Handler{
		store:        store,
		llm:          llm,
		systemPrompt: systemPrompt,
	}
}

func SetupRouter(e *gin.Engine, h *Handler) {
	e.GET("/", h.Index)
	e.POST("/chat", h.Chat)
	e.GET("/history", h.HistoryList)
	e.GET("/history/:id", h.History)
	e.POST("/history/rename/:id", h.Rename)
	e.DELETE("/history/delete/:id", h.Delete)
	e.POST("/history/new", h.NewConversation)
}

func (h *Handler) Index(c *gin.Context) {
	conversations, err := h.store.List()
	if err != nil {
		xlog.ErrorC(c.Request.Context(), "读取会话列表失败", xlog.Err(err))
		conversations = []dao.ConversationInfo{}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Conversations": conversations,
	})
}
