package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub carries scan verdicts to open app sessions.
var Hub = services.NewRealtimeHub()

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func RealtimeSocket(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	Hub.Register(client)

	// Reader loop only exists to notice the close.
	go func() {
		defer Hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
