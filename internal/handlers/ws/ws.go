// internal/handlers/ws/ws_handler.go
package ws

import (
	"net/http"

	"crm-service/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *events.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *events.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// HandleConnection upgrades the request and subscribes the client to
// pipeline events. Clients are write-only from the server's perspective;
// the read loop exists to detect disconnects.
func (h *WSHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)

	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
