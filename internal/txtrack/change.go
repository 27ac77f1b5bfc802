package txtrack

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/x/chflow"
)

// defaultSubscriberBufferSize bounds how many changes a slow subscriber may lag behind.
const defaultSubscriberBufferSize = 64

// ChangeKind names the piece of state a Change touched.
type ChangeKind string

const (
	ChangeTransaction    ChangeKind = "transaction"
	ChangeDeposit        ChangeKind = "deposit"
	ChangeWithdrawalLink ChangeKind = "withdrawal_link"
)

// Change describes a single store mutation. Version is the store version right
// after the mutation; consumers compare it against the last version they
// rendered to decide whether to recompute.
//
// For ChangeTransaction, Status == StatusVerified means the entry was removed.
type Change struct {
	ID             string     `json:"id"`
	Version        uint64     `json:"version"`
	Kind           ChangeKind `json:"kind"`
	Hash           string     `json:"hash"`
	TokenSymbol    string     `json:"tokenSymbol,omitempty"`
	Status         Status     `json:"status,omitempty"`
	SettlementTxID string     `json:"settlementTxId,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

// ChangePublisher receives every change after it has been applied.
type ChangePublisher interface {
	// PublishChange delivers c. Errors are logged by the store and never undo
	// the mutation.
	PublishChange(ctx context.Context, c Change) error
}

// Broadcaster fans changes out to in-process subscribers.
//
// Delivery never blocks the store: a subscriber whose buffer is full misses
// the change and is expected to resynchronize from the version stamp.
type Broadcaster struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]chan Change
	bufferSize  int
}

var _ ChangePublisher = (*Broadcaster)(nil)

// NewBroadcaster returns a Broadcaster whose subscriber channels hold bufferSize
// changes. A non-positive bufferSize selects the default.
func NewBroadcaster(bufferSize int) *Broadcaster {
	if bufferSize <= 0 {
		bufferSize = defaultSubscriberBufferSize
	}

	return &Broadcaster{
		subscribers: make(map[uint64]chan Change),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel receiving every change published from now on.
// The channel is closed once ctx is done.
func (b *Broadcaster) Subscribe(ctx context.Context) <-chan Change {
	ch := make(chan Change, b.bufferSize)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subscribers, id)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// PublishChange implements ChangePublisher.
func (b *Broadcaster) PublishChange(ctx context.Context, c Change) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		if !chflow.TrySend(ch, c) {
			logger.Debug(ctx, "subscriber lagging, change dropped",
				"subscriber.id", id,
				"change.version", c.Version,
			)
		}
	}

	return nil
}

// Len returns the number of active subscribers.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subscribers)
}
