package api

import (
	"net/http"

	"github.com/daodao97/xgo/xlog"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/dao"
)

type RenameReq struct {
	Name string `json:"name"`
}

func (h *Handler) HistoryList(c *gin.Context) {
	list, err := h.store.List()
	if err != nil {
		xlog.ErrorC(c.Request.Context(), "读取会话列表失败", xlog.Err(err))
		list = []dao.ConversationInfo{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) History(c *gin.Context) {
	id := cast.ToInt64(c.Param("id"))

	messages, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *Handler) Rename(c *gin.Context) {
	id := cast.ToInt64(c.Param("id"))

	var req RenameReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New name is required"})
		return
	}

	ok, err := h.store.Rename(id, req.Name)
	if err != nil || !ok {
		if err != nil {
			xlog.ErrorC(c.Request.Context(), "重命名会话失败", xlog.Any("id", id), xlog.Err(err))
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation renamed successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	id := cast.ToInt64(c.Param("id"))

	ok, err := h.store.Delete(id)
	if err != nil || !ok {
		if err != nil {
			xlog.ErrorC(c.Request.Context(), "删除会话失败", xlog.Any("id", id), xlog.Err(err))
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

func (h *Handler) NewConversation(c *gin.Context) {
	id, err := h.store.Create()
	if err != nil {
		xlog.ErrorC(c.Request.Context(), "创建会话失败", xlog.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create new conversation."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": id})
}
