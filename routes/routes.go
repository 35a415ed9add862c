package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected register-feed clients with mutex for thread safety
var clients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var mutex = &sync.Mutex{}
var pumpOnce sync.Once
var validate = validator.New()

// orderEvent is pushed to /ws clients when an order is created or deleted.
type orderEvent struct {
	Event   string `json:"event"`
	OrderID uint   `json:"order_id"`
}

func notifyOrderEvent(event string, orderID uint) {
	payload, err := json.Marshal(orderEvent{Event: event, OrderID: orderID})
	if err != nil {
		log.Printf("Failed to encode order event: %v", err)
		return
	}
	select {
	case broadcast <- payload:
	default:
		log.Println("Order event dropped, broadcast buffer full")
	}
}

func SetupRoutes(app *fiber.App) {

	wsHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		mutex.Lock()
		clients[conn] = true
		mutex.Unlock()
		log.Println("Register feed client connected:", conn.RemoteAddr())

		// Drain reads so we notice disconnects; the feed is one-way
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				mutex.Lock()
				delete(clients, conn)
				mutex.Unlock()
				log.Println("Register feed client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})

	// Push order events to all connected clients
	pumpOnce.Do(func() {
		go func() {
			for message := range broadcast {
				mutex.Lock()
				for client := range clients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						log.Printf("WebSocket write error: %v", err)
						client.Close()
						delete(clients, client)
					}
				}
				mutex.Unlock()
			}
		}()
	})

	// Live register feed
	app.Get("/ws", wsHandler)

	// Cashier routes
	cashiers := app.Group("/cashiers")
	cashiers.Post("/", createCashier)
	cashiers.Get("/:id", getCashier)

	// Product routes
	products := app.Group("/products")
	products.Post("/", createProduct)
	products.Get("/", getAllProducts)
	products.Put("/:id", updateProduct)

	// Order routes
	orders := app.Group("/orders")
	orders.Post("/", createOrder)
	orders.Get("/", getAllOrders)
	orders.Get("/:id", getOrder)
	orders.Delete("/:id", deleteOrder)
}
