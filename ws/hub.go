package ws

// El hub mantiene las conexiones de los dashboards abiertos y les
// retransmite los eventos de cambio sobre la tabla de consultas. El
// payload solo sirve de disparador: el cliente responde recargando el
// histórico completo, no aplica deltas.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client es una conexión WebSocket suscrita.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub administra el registro de clientes y el broadcast.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Println("ws: cliente suscrito")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Println("ws: cliente desconectado")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// EmitirConsulta difunde un evento consulta_update a todos los dashboards.
// Los suscriptores lo usan únicamente como señal de recarga.
func (h *Hub) EmitirConsulta(data map[string]interface{}) {
	wrapper := map[string]interface{}{
		"type": "consulta_update",
		"data": data,
	}
	msg, err := json.Marshal(wrapper)
	if err != nil {
		log.Printf("ws: no se pudo serializar el evento: %v", err)
		return
	}
	h.Broadcast <- msg
}
