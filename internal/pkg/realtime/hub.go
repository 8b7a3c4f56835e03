package realtime

import (
	log "log/slog"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// Hub 管理所有活跃的 Websocket 连接并向它们广播事件
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Register 接管一个新连接
func (s *Hub) Register(conn *websocket.Conn) {
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
}

// Unregister 移除并关闭连接
func (s *Hub) Unregister(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		_ = conn.Close()
	}
	s.mu.Unlock()
}

// Broadcast 向所有连接推送一条事件，失败的连接直接剔除
func (s *Hub) Broadcast(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		log.Error("广播事件序列化失败", "event", event, "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

// LikeUpdate 点赞数变更事件载荷
type LikeUpdate struct {
	PostID    uint64 `json:"postId"`
	LikeCount int64  `json:"likeCount"`
	Liked     bool   `json:"liked"`
}

// BroadcastLikeUpdate 推送帖子点赞数变更
func (s *Hub) BroadcastLikeUpdate(update LikeUpdate) {
	s.Broadcast("like-updated", update)
}
