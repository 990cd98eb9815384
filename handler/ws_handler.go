package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// DriverSocket upgrades to WS and registers the driver connection so the
// allocation engine can push rental.assigned events.
func (h *WSHandler) DriverSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		// auth + role middleware run before this handler
		name := c.GetString("principal_id")
		if name == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "driver identity missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.RegisterDriver(name, conn)
		// no inbound driver events currently; hold the connection until closed
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterDriver(name)
				break
			}
		}
	}
}

// ClientSocket upgrades to WS and registers the client connection for
// rental.booked events.
func (h *WSHandler) ClientSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("principal_id")
		if email == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "client identity missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.RegisterClient(email, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterClient(email)
				break
			}
		}
	}
}
