// Package notify delivers fire-and-forget balance events to the
// surrounding system's socket emitter. The core's responsibility ends at
// "balance changed, event enqueued"; delivery failures are logged, never
// surfaced to the mutating call.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/pkg/clients"
)

const (
	EventCreditBalanceUpdated = "credit_balance_updated"
	EventTransactionAdded     = "transaction_added"
	EventStakingUpdate        = "staking_update"
)

type Event struct {
	UserID uuid.UUID `json:"userId"`
	Event  string    `json:"event"`
	Data   any       `json:"data"`
}

type BalanceData struct {
	Available float64            `json:"available"`
	Staked    float64            `json:"staked"`
	Tier      domain.StakingTier `json:"tier"`
}

type TransactionData struct {
	ID           uuid.UUID         `json:"id"`
	Amount       float64           `json:"amount"`
	Kind         domain.LedgerKind `json:"kind"`
	Description  string            `json:"description"`
	BalanceAfter float64           `json:"balance_after"`
}

type Notifier interface {
	Emit(event Event)
}

const deliveryTimeout = time.Second * 10

// WebhookNotifier POSTs events to a configured URL from a small worker
// pool, so mutating requests never wait on the sink.
type WebhookNotifier struct {
	url    string
	client clients.HTTPClientI
	pool   WorkerPoolI
}

func NewWebhookNotifier(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: client,
		pool:   NewWorkerPool(4),
	}
}

func (n *WebhookNotifier) Emit(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal event", zap.Error(err))
		return
	}

	err = n.pool.AddTask(context.Background(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		statusCode, _, err := n.client.Post(ctx, n.url, "application/json", body)
		if err != nil {
			return fmt.Errorf("failed to deliver %s event: %w", event.Event, err)
		}
		if statusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("event sink rejected %s event with status %d", event.Event, statusCode)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't enqueue event", zap.Error(err))
	}
}

func (n *WebhookNotifier) Close() {
	n.pool.Close()
}
