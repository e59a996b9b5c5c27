package cartControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/MasinARK/E-commerce/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /cart/ws
//
// Streams cart snapshots to the client: the current cart on connect,
// then the new state after every dispatch. Closing the socket cancels
// the subscription.
func CartStream() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		snapshots, cancel := store.Subscribe()
		defer cancel()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case snap := <-snapshots:
				data, err := json.Marshal(snap)
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}
