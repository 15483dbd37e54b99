package offline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"warung-pos/internal/domain"

	"github.com/google/uuid"
)

// Submitter delivers a queued batch to the server.
type Submitter interface {
	SubmitBatch(ctx context.Context, orders []domain.OrderPayload) (*domain.SyncResponse, error)
}

// Queue buffers order-creation requests made while the terminal has no
// connectivity and replays them once it returns. Entries are persisted on
// every mutation and only removed after the server confirms them, so an
// abandoned sync (crash, page unload) simply leaves them queued for the
// next session.
type Queue struct {
	mu        sync.Mutex
	store     Store
	submitter Submitter
	pending   []domain.OrderPayload
	online    bool
	syncing   bool
	debounce  time.Duration
	timer     *time.Timer
}

// NewQueue loads any previously persisted entries. debounce delays the
// automatic sync after an offline-to-online transition so a flapping
// connection does not trigger a burst of attempts.
func NewQueue(store Store, submitter Submitter, debounce time.Duration) (*Queue, error) {
	pending, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load offline queue: %w", err)
	}
	return &Queue{
		store:     store,
		submitter: submitter,
		pending:   pending,
		debounce:  debounce,
	}, nil
}

// Enqueue appends an order to the queue and persists immediately. It never
// rejects: graceful degradation is the whole point. A missing uuid or
// timestamp is stamped here so the entry is replayable as-is.
func (q *Queue) Enqueue(order domain.OrderPayload) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if order.UUID == "" {
		order.UUID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	q.pending = append(q.pending, order)
	if err := q.store.Save(q.pending); err != nil {
		log.Printf("WARNING: failed to persist offline queue: %v", err)
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) Online() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.online
}

// SetOnline records a connectivity transition. Going from offline to online
// schedules a sync after the debounce delay; going offline cancels a
// scheduled sync but never an in-flight one.
func (q *Queue) SetOnline(online bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	wasOnline := q.online
	q.online = online

	if online && !wasOnline && len(q.pending) > 0 {
		if q.timer != nil {
			q.timer.Stop()
		}
		q.timer = time.AfterFunc(q.debounce, func() {
			if _, err := q.SyncNow(context.Background()); err != nil {
				log.Printf("WARNING: automatic offline sync failed: %v", err)
			}
		})
	}
	if !online && q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// SyncNow submits the whole queued batch in one call. It proceeds only when
// online, not already syncing and non-empty; at most one sync is in flight
// at a time. Entries enqueued while a sync is in flight are left for the
// next one. On a successful round-trip only the entries the server confirms
// are removed; failed ones stay queued. A transport failure leaves the
// queue untouched.
func (q *Queue) SyncNow(ctx context.Context) (*domain.SyncResponse, error) {
	q.mu.Lock()
	if !q.online || q.syncing || len(q.pending) == 0 {
		q.mu.Unlock()
		return nil, nil
	}
	q.syncing = true
	batch := make([]domain.OrderPayload, len(q.pending))
	copy(batch, q.pending)
	q.mu.Unlock()

	resp, err := q.submitter.SubmitBatch(ctx, batch)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.syncing = false

	if err != nil {
		// Transient failure: everything stays queued for the next attempt.
		return nil, fmt.Errorf("offline sync failed: %w", err)
	}

	failed := make(map[string]bool, len(resp.FailedUUIDs))
	for _, id := range resp.FailedUUIDs {
		failed[id] = true
	}

	submitted := make(map[string]bool, len(batch))
	for _, order := range batch {
		submitted[order.UUID] = true
	}

	// Keep entries the server reported as failed plus anything enqueued
	// while the sync was in flight.
	var remaining []domain.OrderPayload
	for _, order := range q.pending {
		if !submitted[order.UUID] || failed[order.UUID] {
			remaining = append(remaining, order)
		}
	}
	q.pending = remaining
	if q.pending == nil {
		q.pending = []domain.OrderPayload{}
	}
	if err := q.store.Save(q.pending); err != nil {
		log.Printf("WARNING: failed to persist offline queue: %v", err)
	}

	for _, msg := range resp.Errors {
		log.Printf("offline sync: order rejected: %s", msg)
	}

	return resp, nil
}
