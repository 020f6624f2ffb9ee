package websocket

import (
	"github.com/cristianortiz/invoiceAuction/internal/auction/application"
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/shopspring/decimal"
)

// MessageType defines ws type message
type MessageType string

const (
	MessageTypeClientBid          MessageType = "client_bid"           // client msg to make a bid
	MessageTypeServerEvent        MessageType = "server_event"         // server msg carrying an engine event
	MessageTypeServerBidAccepted  MessageType = "server_bid_accepted"  // server ack to the bidder
	MessageTypeServerError        MessageType = "server_error"         // server msg indicating error
	MessageTypeServerInitialState MessageType = "server_initial_state" // server msg with invoice state on connect
)

// BaseMessage is base struct for all the WS messages, includes a Type field for identify the message type
type BaseMessage struct {
	Type MessageType `json:"type"`
}

// ClientBidMessage is DTO for a bid message sended by the client, the invoice is the one the
// connection is subscribed to
type ClientBidMessage struct {
	BaseMessage
	Payload struct {
		BidderID string          `json:"bidder_id"`
		Amount   decimal.Decimal `json:"amount"`
	} `json:"payload"`
}

// ServerEventMessage forwards an engine event to subscribers
type ServerEventMessage struct {
	BaseMessage
	Payload domain.Event `json:"payload"`
}

type ServerBidAcceptedMessage struct {
	BaseMessage
	Payload application.BidDTO `json:"payload"`
}

type ServerErrorMessage struct {
	BaseMessage
	Payload struct {
		Error string `json:"error"`
		Code  string `json:"code,omitempty"`
	} `json:"payload"`
}

// ServerInitialStateMessage is the invoice state sent to a client right after it connects
type ServerInitialStateMessage struct {
	BaseMessage
	Payload application.InvoiceStateDTO `json:"payload"`
}
