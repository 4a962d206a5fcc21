package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/relay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Консоль и сервер живут на разных origin, отсекаем по API-ключу
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Subscribe to live patrol events
// @Description Upgrade to a websocket and receive scan_log_created and status_update events as they happen. The API key is passed via the api_key query parameter because browser WebSocket clients cannot set custom headers.
// @Tags Events
// @Security ApiKeyAuth
// @Param api_key query string false "API key (alternative to the X-API-Key header)"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}
	relay.NewClient(h.hub, conn, h.logger)
}
