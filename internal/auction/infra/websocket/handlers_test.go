package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/application"
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/websocket"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func runningHub(t *testing.T) *websocket.Hub {
	t.Helper()
	hub := websocket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

// registeredClient returns a network-less client the hub already knows
func registeredClient(t *testing.T, hub *websocket.Hub, topic string) *websocket.Client {
	t.Helper()
	c := websocket.NewClient(hub, nil, topic)
	hub.RegisterClient(c)
	require.Eventually(t, func() bool {
		return hub.ClientCount(context.Background(), topic) > 0
	}, time.Second, 5*time.Millisecond)
	return c
}

func readMessage(t *testing.T, c *websocket.Client, out any) MessageType {
	t.Helper()
	var data []byte
	select {
	case data = <-c.Send:
	case <-time.After(time.Second):
		t.Fatal("no message sent to client")
	}
	var base BaseMessage
	require.NoError(t, json.Unmarshal(data, &base))
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out))
	}
	return base.Type
}

func TestAuctionWSHandler_ClientBidAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := application.NewMockAuctionService(ctrl)
	hub := runningHub(t)
	h := NewAuctionWSHandler(service, hub)
	client := registeredClient(t, hub, "12")

	bid := &domain.Bid{ID: uuid.New(), InvoiceID: 12, BidderID: "alice", Amount: decimal.NewFromInt(75), PlacedAt: time.Now().UTC()}
	service.EXPECT().PlaceBid(gomock.Any()).DoAndReturn(func(cmd application.PlaceBidDTO) (*domain.Bid, error) {
		require.Equal(t, int64(12), cmd.InvoiceID)
		require.Equal(t, "alice", cmd.BidderID)
		require.True(t, decimal.NewFromInt(75).Equal(cmd.Amount))
		return bid, nil
	})

	h.processMessage(client, []byte(`{"type":"client_bid","payload":{"bidder_id":"alice","amount":"75"}}`))

	var ack ServerBidAcceptedMessage
	require.Equal(t, MessageTypeServerBidAccepted, readMessage(t, client, &ack))
	require.Equal(t, bid.ID, ack.Payload.ID)
	require.True(t, bid.Amount.Equal(ack.Payload.Amount))
}

func TestAuctionWSHandler_ClientBidRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := application.NewMockAuctionService(ctrl)
	hub := runningHub(t)
	h := NewAuctionWSHandler(service, hub)
	client := registeredClient(t, hub, "12")

	service.EXPECT().PlaceBid(gomock.Any()).
		Return(nil, fmt.Errorf("place bid use case: %w", domain.ErrBidTooHigh))

	h.processMessage(client, []byte(`{"type":"client_bid","payload":{"bidder_id":"alice","amount":95}}`))

	var errMsg ServerErrorMessage
	require.Equal(t, MessageTypeServerError, readMessage(t, client, &errMsg))
	require.Equal(t, "bid_too_high", errMsg.Payload.Code)
}

func TestAuctionWSHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not_json", data: `bid please`},
		{name: "unknown_type", data: `{"type":"client_join_lot"}`},
		{name: "bad_payload", data: `{"type":"client_bid","payload":{"amount":"lots"}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectation set, any service call fails the test
			hub := runningHub(t)
			h := NewAuctionWSHandler(application.NewMockAuctionService(ctrl), hub)
			client := registeredClient(t, hub, "3")

			h.processMessage(client, []byte(tc.data))

			var errMsg ServerErrorMessage
			require.Equal(t, MessageTypeServerError, readMessage(t, client, &errMsg))
			require.Equal(t, "validation", errMsg.Payload.Code)
		})
	}
}

func TestAuctionWSHandler_RepliesRacingUnregister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hub := runningHub(t)
	h := NewAuctionWSHandler(application.NewMockAuctionService(ctrl), hub)

	var wg sync.WaitGroup
	topics := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		topic := fmt.Sprintf("%d", 100+i)
		topics = append(topics, topic)
		client := registeredClient(t, hub, topic)
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.sendErrorToClient(client, "bid rejected", "bid_too_high")
		}()
		go func() {
			defer wg.Done()
			hub.UnregisterClient(client)
		}()
	}
	wg.Wait()
	for _, topic := range topics {
		require.Eventually(t, func() bool {
			return hub.ClientCount(context.Background(), topic) == 0
		}, time.Second, 5*time.Millisecond)
	}
}

type capturingHub struct {
	topics []string
	data   [][]byte
}

func (c *capturingHub) Broadcast(topic string, data []byte) {
	c.topics = append(c.topics, topic)
	c.data = append(c.data, data)
}

func TestEventBroadcaster(t *testing.T) {
	hub := &capturingHub{}
	b := NewEventBroadcaster(hub)

	b.Notify(domain.Event{Seq: 1, Type: domain.EventBidAccepted, InvoiceID: 4, Amount: decimal.NewFromInt(60)})
	b.Notify(domain.Event{Seq: 2, Type: domain.EventBidRejected, InvoiceID: 4})
	b.Notify(domain.Event{Seq: 3, Type: domain.EventInvoiceFinalized, InvoiceID: 9})

	require.Equal(t, []string{"4", "9"}, hub.topics)

	var msg ServerEventMessage
	require.NoError(t, json.Unmarshal(hub.data[0], &msg))
	require.Equal(t, MessageTypeServerEvent, msg.Type)
	require.Equal(t, uint64(1), msg.Payload.Seq)
	require.Equal(t, domain.EventBidAccepted, msg.Payload.Type)
	require.True(t, decimal.NewFromInt(60).Equal(msg.Payload.Amount))
}
