package websocket

import (
	"context"

	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

const (
	// size of every client outbound queue
	sendBuffer = 64
	// size of the hub control and inbound queues
	queueBuffer = 256
)

// Hub keeps the registry of connected clients grouped by topic and fans messages out to them.
// all registry mutations happen in the Run goroutine, which is also the only one sending on or
// closing a registered client Send channel
type Hub struct {
	// topic -> set of clients
	clients    map[string]map[*Client]struct{}
	broadcast  chan *Message
	direct     chan *directMessage
	register   chan *Client
	unregister chan *Client
	counts     chan countRequest
	// inbound client messages, consumed by module specific handlers
	InboundMessages chan *ClientMessage
}

// Client represents a ws individual connection subscribed to one topic
type Client struct {
	Hub *Hub
	// nil for clients that never touch the network (tests)
	Conn *websocket.Conn
	// Buffered channel of outbound messages, closed by the hub on unregister
	Send       chan []byte
	Topic      string
	ID         string
	RemoteAddr string
}

// Message is a payload for every client of Topic
type Message struct {
	Topic string
	Data  []byte
}

// ClientMessage wraps a message received from a client together with its sender
type ClientMessage struct {
	Client *Client
	Data   []byte
}

type directMessage struct {
	client *Client
	data   []byte
}

type countRequest struct {
	topic string
	reply chan int
}

func NewHub() *Hub {
	return &Hub{
		clients:         make(map[string]map[*Client]struct{}),
		broadcast:       make(chan *Message, queueBuffer),
		direct:          make(chan *directMessage, queueBuffer),
		register:        make(chan *Client, queueBuffer),
		unregister:      make(chan *Client, queueBuffer),
		counts:          make(chan countRequest),
		InboundMessages: make(chan *ClientMessage, queueBuffer),
	}
}

// NewClient creates a client for topic with a fresh id, it still has to be registered.
// until then Send belongs to the caller, which may queue messages the client gets first
func NewClient(hub *Hub, conn *websocket.Conn, topic string) *Client {
	c := &Client{
		Hub:   hub,
		Conn:  conn,
		Send:  make(chan []byte, sendBuffer),
		Topic: topic,
		ID:    uuid.NewString(),
	}
	if conn != nil {
		c.RemoteAddr = conn.RemoteAddr().String()
	}
	return c
}

// Run starts the hub listening in their channels, on cancellation every client send channel is closed
func (h *Hub) Run(ctx context.Context) {
	log.Info("Websocket hub started")
	for {
		select {
		case <-ctx.Done():
			for topic, clients := range h.clients {
				for client := range clients {
					close(client.Send)
				}
				delete(h.clients, topic)
			}
			log.Info("Websocket hub shutting down due to context cancellation")
			return

		case client := <-h.register:
			if _, ok := h.clients[client.Topic]; !ok {
				h.clients[client.Topic] = make(map[*Client]struct{})
			}
			h.clients[client.Topic][client] = struct{}{}
			log.Info("Client registered",
				zap.String("clientID", client.ID),
				zap.String("topic", client.Topic),
				zap.String("remote_addr", client.RemoteAddr),
				zap.Int("total_clients", h.total()),
			)

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			clients := h.clients[message.Topic]
			log.Debug("Broadcasting message", zap.String("topic", message.Topic), zap.Int("clients", len(clients)))
			for client := range clients {
				select {
				case client.Send <- message.Data:
				default:
					// a client that cannot keep up is dropped
					log.Warn("Client send queue is full, unregistering",
						zap.String("clientID", client.ID),
						zap.String("topic", client.Topic),
					)
					h.remove(client)
				}
			}

		case msg := <-h.direct:
			if _, ok := h.clients[msg.client.Topic][msg.client]; !ok {
				log.Debug("Client is not registered, message discarded", zap.String("clientID", msg.client.ID))
				continue
			}
			select {
			case msg.client.Send <- msg.data:
			default:
				log.Warn("Client send queue is full, unregistering",
					zap.String("clientID", msg.client.ID),
					zap.String("topic", msg.client.Topic),
				)
				h.remove(msg.client)
			}

		case req := <-h.counts:
			req.reply <- len(h.clients[req.topic])
		}
	}
}

func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.Topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.Topic)
	}
	log.Info("Client unregistered",
		zap.String("clientID", client.ID),
		zap.String("topic", client.Topic),
		zap.Int("total_clients", h.total()),
	)
}

func (h *Hub) total() int {
	count := 0
	for _, clients := range h.clients {
		count += len(clients)
	}
	return count
}

// RegisterClient register a new client in the hub
func (h *Hub) RegisterClient(client *Client) {
	select {
	case h.register <- client:
	default:
		log.Error("Register queue is full, client registration failed",
			zap.String("clientID", client.ID),
			zap.String("topic", client.Topic),
		)
		if client.Conn != nil {
			_ = client.Conn.Close()
		}
	}
}

// UnregisterClient delete a client from the hub, safe to call more than once
func (h *Hub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	default:
		log.Error("Unregister queue is full, client unregistration failed",
			zap.String("clientID", client.ID),
			zap.String("topic", client.Topic),
		)
	}
}

// Broadcast sends data to every client subscribed to topic. it never blocks, a full queue drops the message
func (h *Hub) Broadcast(topic string, data []byte) {
	select {
	case h.broadcast <- &Message{Topic: topic, Data: data}:
	default:
		log.Error("Broadcast queue is full, message dropped", zap.String("topic", topic))
	}
}

// SendTo queues data for a single registered client. it never blocks and silently discards
// messages for clients the hub no longer knows
func (h *Hub) SendTo(client *Client, data []byte) {
	select {
	case h.direct <- &directMessage{client: client, data: data}:
	default:
		log.Error("Direct queue is full, message dropped", zap.String("clientID", client.ID))
	}
}

// ClientCount returns how many clients are subscribed to topic, it needs Run to be active
func (h *Hub) ClientCount(ctx context.Context, topic string) int {
	req := countRequest{topic: topic, reply: make(chan int, 1)}
	select {
	case h.counts <- req:
		return <-req.reply
	case <-ctx.Done():
		return 0
	}
}
