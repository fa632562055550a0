package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/service"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 30 * time.Second
	wsMaxFrameSize = 4096
)

// ChatSocketHandler serves interactive chat over a websocket. Each
// connection carries one conversation; the session id from the first
// reply is reused for subsequent turns unless the client sends its own.
type ChatSocketHandler struct {
	chat     *service.ChatService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewChatSocketHandler(chat *service.ChatService, allowedOrigins []string, logger *zap.Logger) *ChatSocketHandler {
	return &ChatSocketHandler{
		chat: chat,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			CheckOrigin:      originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

type wsClientMessage struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type wsErrorMessage struct {
	Error string `json:"error"`
}

// GET /api/ai/ws
func (h *ChatSocketHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsMaxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go h.pingLoop(conn, stopPing)

	sessionID := ""
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket read error", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsPongTimeout))

		var msg wsClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.writeJSON(conn, wsErrorMessage{Error: "invalid message format"})
			continue
		}
		if msg.SessionID != "" {
			sessionID = msg.SessionID
		}

		reply, err := h.chat.HandleMessage(c.Request.Context(), sessionID, msg.Message)
		if err != nil {
			h.writeJSON(conn, wsErrorMessage{Error: err.Error()})
			continue
		}
		sessionID = reply.SessionID

		if !h.writeJSON(conn, reply) {
			return
		}
	}
}

func (h *ChatSocketHandler) pingLoop(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			deadline := time.Now().Add(wsWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func (h *ChatSocketHandler) writeJSON(conn *websocket.Conn, payload any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(payload); err != nil {
		h.logger.Debug("WebSocket write error", zap.Error(err))
		return false
	}
	return true
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowedSet[origin]
		return ok
	}
}
