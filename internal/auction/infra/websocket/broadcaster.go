package websocket

import (
	"encoding/json"
	"strconv"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"go.uber.org/zap"
)

// Broadcaster is the part of the hub the event sink needs
type Broadcaster interface {
	Broadcast(topic string, data []byte)
}

// InvoiceTopic is the hub topic clients watching an invoice subscribe to
func InvoiceTopic(invoiceID int64) string {
	return strconv.FormatInt(invoiceID, 10)
}

// EventBroadcaster is a domain.Notifier pushing engine events to the clients watching the invoice.
// rejections are only answered to the bidder that caused them, they are not broadcast
type EventBroadcaster struct {
	hub Broadcaster
}

func NewEventBroadcaster(hub Broadcaster) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

func (b *EventBroadcaster) Notify(ev domain.Event) {
	if ev.Type == domain.EventBidRejected {
		return
	}
	msg := ServerEventMessage{BaseMessage: BaseMessage{Type: MessageTypeServerEvent}, Payload: ev}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal ServerEventMessage", zap.Uint64("seq", ev.Seq), zap.Error(err))
		return
	}
	b.hub.Broadcast(InvoiceTopic(ev.InvoiceID), data)
}
