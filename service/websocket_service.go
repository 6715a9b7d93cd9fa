package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

// WebSocketService serves the chat widget's persistent connection. Each
// chat frame runs the same arbiter pipeline as the HTTP endpoint; the
// connection's remote address stands in for the session when the caller is
// anonymous.
type WebSocketService struct {
	arbiter  *Arbiter
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebSocketService(arbiter *Arbiter, logger *zap.Logger) *WebSocketService {
	return &WebSocketService{
		arbiter: arbiter,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // widget is embedded cross-origin on the storefront
			},
		},
		logger: logger,
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(64 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong})

		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil || payload.Message == "" {
				s.writeError(conn, "invalid payload")
				continue
			}

			sessionID := payload.MemberID
			if sessionID == "" {
				sessionID = r.RemoteAddr
			}
			text := s.arbiter.Answer(r.Context(), payload.Message, payload.MemberID, sessionID)
			if err := conn.WriteJSON(types.WebSocketResponse{
				Type:    types.TypeWebsocketChat,
				Payload: types.ChatResponse{Text: text},
			}); err != nil {
				s.logger.Warn("websocket write error", zap.Error(err))
				return
			}

		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: map[string]string{"message": message},
	})
}
