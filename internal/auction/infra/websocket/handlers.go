package websocket

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cristianortiz/invoiceAuction/internal/auction/application"
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/cristianortiz/invoiceAuction/internal/shared/websocket"
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// AuctionWSHandler handles the ws inbound msgs wich are specific for auction module (remember is a bounded context)
type AuctionWSHandler struct {
	auctionService application.AuctionService // application layer dependency
	hub            *websocket.Hub             // shared hub dependency to send msgs
}

// NewAuctionWSHandler creates a new instance of AuctionWSHandler
func NewAuctionWSHandler(auctionService application.AuctionService, hub *websocket.Hub) *AuctionWSHandler {
	return &AuctionWSHandler{
		auctionService: auctionService,
		hub:            hub,
	}
}

// RegisterRoutes mounts GET /ws/invoices/:id
func (h *AuctionWSHandler) RegisterRoutes(ctx context.Context, router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws/invoices/:id", fiberws.New(func(conn *fiberws.Conn) {
		h.Serve(ctx, conn)
	}))
}

// Serve subscribes the connection to the invoice in the :id param, sends it the current state and
// blocks pumping messages until the connection ends
func (h *AuctionWSHandler) Serve(ctx context.Context, conn *fiberws.Conn) {
	invoiceID, err := strconv.ParseInt(conn.Params("id"), 10, 64)
	if err != nil || invoiceID <= 0 {
		h.closeWithError(conn, "invalid invoice id", "validation")
		return
	}
	inv, err := h.auctionService.GetInvoice(invoiceID)
	if err != nil {
		h.closeWithError(conn, err.Error(), domain.ReasonCode(err))
		return
	}

	client := websocket.NewClient(h.hub, conn, InvoiceTopic(invoiceID))
	state := ServerInitialStateMessage{
		BaseMessage: BaseMessage{Type: MessageTypeServerInitialState},
		Payload:     application.NewInvoiceStateDTO(inv, h.auctionService.BidSpread()),
	}
	// not registered yet, the state can go straight into the queue and is the first thing written
	if data, ok := encode(state); ok {
		client.Send <- data
	}
	h.hub.RegisterClient(client)

	// fiber releases the connection when this handler returns
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

// ListenForMessages starts a go routine that listen the Hub inbound channel for messages and proccess every one of them
func (h *AuctionWSHandler) ListenForMessages(ctx context.Context) {
	log.Info("AuctionWSHandler started listening for inbound messages from hub")
	for {
		select {
		case <-ctx.Done():
			log.Info("AuctionWSHandler stopped listening for inbound messages from hub")
			return
		case msg := <-h.hub.InboundMessages:
			h.processMessage(msg.Client, msg.Data)
		}
	}
}

// processMessage dispatch the message by this type
func (h *AuctionWSHandler) processMessage(client *websocket.Client, data []byte) {
	var baseMsg BaseMessage
	if err := json.Unmarshal(data, &baseMsg); err != nil {
		h.sendErrorToClient(client, "invalid message format", "validation")
		return
	}
	switch baseMsg.Type {
	case MessageTypeClientBid:
		h.handleClientBidMessage(client, data)
	default:
		h.sendErrorToClient(client, "unknown message type", "validation")
	}
}

func (h *AuctionWSHandler) handleClientBidMessage(client *websocket.Client, data []byte) {
	var bidMsg ClientBidMessage
	if err := json.Unmarshal(data, &bidMsg); err != nil {
		h.sendErrorToClient(client, "invalid bid message format", "validation")
		return
	}
	invoiceID, err := strconv.ParseInt(client.Topic, 10, 64)
	if err != nil {
		h.sendErrorToClient(client, "client is not subscribed to an invoice", "validation")
		return
	}

	bid, err := h.auctionService.PlaceBid(application.PlaceBidDTO{
		InvoiceID: invoiceID,
		BidderID:  bidMsg.Payload.BidderID,
		Amount:    bidMsg.Payload.Amount,
	})
	if err != nil {
		h.sendErrorToClient(client, err.Error(), domain.ReasonCode(err))
		return
	}

	// everyone watching gets the bid_accepted event through the broadcaster, the bidder also gets an ack
	ack := ServerBidAcceptedMessage{BaseMessage: BaseMessage{Type: MessageTypeServerBidAccepted}}
	ack.Payload = application.BidDTO{ID: bid.ID, BidderID: bid.BidderID, Amount: bid.Amount, PlacedAt: bid.PlacedAt}
	h.send(client, ack)
}

// sendErrorToClient serializes and sends an error msg to a specific client
func (h *AuctionWSHandler) sendErrorToClient(client *websocket.Client, errorMessage, code string) {
	errMsg := ServerErrorMessage{BaseMessage: BaseMessage{Type: MessageTypeServerError}}
	errMsg.Payload.Error = errorMessage
	errMsg.Payload.Code = code
	h.send(client, errMsg)
}

// send replies to one client through the hub, which owns the client Send channel
func (h *AuctionWSHandler) send(client *websocket.Client, msg any) {
	if data, ok := encode(msg); ok {
		h.hub.SendTo(client, data)
	}
}

func encode(msg any) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal ws message", zap.Error(err))
		return nil, false
	}
	return data, true
}

func (h *AuctionWSHandler) closeWithError(conn *fiberws.Conn, errorMessage, code string) {
	errMsg := ServerErrorMessage{BaseMessage: BaseMessage{Type: MessageTypeServerError}}
	errMsg.Payload.Error = errorMessage
	errMsg.Payload.Code = code
	if err := conn.WriteJSON(errMsg); err != nil {
		log.Warn("failed to write ws error before closing", zap.Error(err))
	}
	_ = conn.Close()
}
