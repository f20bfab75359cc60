package dao

import (
	"encoding/json"

	"github.com/daodao97/xgo/xdb"

	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/pkg/xllm"
)

// DefaultName 新会话的占位名称，由 rename 接口修改
const DefaultName = "New Conversation"

type ConversationInfo struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type ConversationStore struct {
	model xdb.Model
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		model: xdb.New("conversations"),
	}
}

// Create 插入一条占位名、零消息的会话，返回自增 id
func (s *ConversationStore) Create() (int64, error) {
	return s.model.Insert(xdb.Record{
		"name":     DefaultName,
		"messages": "[]",
	})
}

// Get 读取会话的全部消息。记录不存在与底层读失败统一返回 error，
// 调用方一律按"无效会话"处理
func (s *ConversationStore) Get(id int64) ([]xllm.Message, error) {
	row, err := s.model.First(xdb.WhereEq("id", id))
	if err != nil {
		return nil, err
	}

	var messages []xllm.Message
	if err := json.Unmarshal([]byte(row.GetString("messages")), &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []xllm.Message{}
	}
	return messages, nil
}

// Update 整体覆盖 messages 列。id 不存在时零行受影响，不视为失败
func (s *ConversationStore) Update(id int64, messages []xllm.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	_, err = s.model.Update(xdb.Record{"messages": string(data)}, xdb.WhereEq("id", id))
	return err
}

// List 按存储顺序返回所有会话的 id 和名称
func (s *ConversationStore) List() ([]ConversationInfo, error) {
	rows, err := s.model.Selects()
	if err != nil {
		return nil, err
	}

	list := make([]ConversationInfo, 0, len(rows))
	for _, row := range rows {
		list = append(list, ConversationInfo{
			Id:   row.GetInt64("id"),
			Name: row.GetString("name"),
		})
	}
	return list, nil
}

// Rename 返回的 bool 表示是否有行受影响，handler 据此回 404
func (s *ConversationStore) Rename(id int64, name string) (bool, error) {
	return s.model.Update(xdb.Record{"name": name}, xdb.WhereEq("id", id))
}

// Delete 无条件删除，重复删除时零行受影响
func (s *ConversationStore) Delete(id int64) (bool, error) {
	return s.model.Delete(xdb.WhereEq("id", id))
}
