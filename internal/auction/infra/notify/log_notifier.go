package notify

import (
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"go.uber.org/zap"
)

// LogNotifier writes every event as a structured log line
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier, nil uses the shared logger
func NewLogNotifier(l *zap.Logger) *LogNotifier {
	if l == nil {
		l = log
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) Notify(ev domain.Event) {
	fields := []zap.Field{
		zap.Uint64("seq", ev.Seq),
		zap.String("type", string(ev.Type)),
		zap.Int64("invoiceID", ev.InvoiceID),
		zap.Time("occurredAt", ev.OccurredAt),
	}
	if ev.BidderID != "" {
		fields = append(fields, zap.String("bidderID", ev.BidderID))
	}
	if !ev.Amount.IsZero() {
		fields = append(fields, zap.String("amount", ev.Amount.String()))
	}
	if ev.WinningBid != nil {
		fields = append(fields, zap.String("winningBidID", ev.WinningBid.ID.String()))
	}
	if ev.ReasonCode != "" {
		fields = append(fields, zap.String("reasonCode", ev.ReasonCode))
	}
	if ev.Reason != "" {
		fields = append(fields, zap.String("reason", ev.Reason))
	}

	if ev.Type == domain.EventBidRejected {
		n.logger.Warn("Auction event", fields...)
		return
	}
	n.logger.Info("Auction event", fields...)
}
