package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decentracode/creditcore/internal/domain"
)

type stubHTTPClient struct {
	mu         sync.Mutex
	requests   [][]byte
	urls       []string
	statusCode int
	err        error
	done       chan struct{}
}

func (c *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

func (c *stubHTTPClient) Post(ctx context.Context, url string, contentType string, body []byte) (int, []byte, error) {
	c.mu.Lock()
	c.requests = append(c.requests, body)
	c.urls = append(c.urls, url)
	c.mu.Unlock()
	if c.done != nil {
		close(c.done)
	}
	return c.statusCode, nil, c.err
}

func TestWebhookNotifierEmit(t *testing.T) {
	client := &stubHTTPClient{statusCode: http.StatusOK, done: make(chan struct{})}
	notifier := NewWebhookNotifier("http://localhost:3001/api/emit", client)
	defer notifier.Close()

	userID := uuid.New()
	notifier.Emit(Event{
		UserID: userID,
		Event:  EventCreditBalanceUpdated,
		Data: BalanceData{
			Available: 90,
			Staked:    100,
			Tier:      domain.TierBronze,
		},
	})

	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("event was never delivered")
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.requests, 1)
	assert.Equal(t, "http://localhost:3001/api/emit", client.urls[0])

	var event struct {
		UserID uuid.UUID       `json:"userId"`
		Event  string          `json:"event"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(client.requests[0], &event))
	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, EventCreditBalanceUpdated, event.Event)

	var data BalanceData
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, 90.0, data.Available)
	assert.Equal(t, domain.TierBronze, data.Tier)
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var mu sync.Mutex
	var executed int
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
		require.NoError(t, err, "failed to add task to pool")
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, executed)
}

// A task still sitting in the queue at Close time must run, not be
// consumed and dropped.
func TestWorkerPoolCloseDrainsQueuedTasks(t *testing.T) {
	wp := NewWorkerPool(1)

	block := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-block
		return nil
	}))
	<-started

	ran := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(ran)
		return nil
	}))

	wp.Close()
	close(block)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("queued task was dropped on close")
	}
}
