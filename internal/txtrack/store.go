// Package txtrack tracks the lifecycle of wallet transactions and deposits.
//
// The Store holds three pieces of state: watched transaction statuses,
// per-token deposit lists, and the withdrawal to settlement transaction
// mapping. Every mutation bumps a version stamp and is published to the
// store's subscribers. The service built on top of the Store runs the watch
// workflows that mirror confirmations reported by an external provider.
package txtrack

import (
	"cmp"
	"context"
	"maps"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/txtrack/internal/pkg/logger"
	"github.com/gabapcia/txtrack/internal/pkg/validator"

	"github.com/google/uuid"
)

// WatchedTransaction is a transaction whose confirmation progress is being followed.
type WatchedTransaction struct {
	Hash   string `json:"hash"`
	Status Status `json:"status"`
}

// Deposit is an inbound transfer tracked under its token symbol.
type Deposit struct {
	Hash          string `json:"hash"`
	Amount        string `json:"amount"` // base-10 integer in the token's smallest unit
	Status        Status `json:"status"`
	Confirmations int    `json:"confirmations"`
}

// DepositUpdate is the input of RecordDeposit. Amount and Confirmations are
// only used when the deposit is not known yet.
type DepositUpdate struct {
	TokenSymbol   string
	Hash          string
	Amount        string
	Status        Status
	Confirmations int
}

// DepositsSnapshot is a copy of the deposits taken at Version.
type DepositsSnapshot struct {
	Version uint64               `json:"version"`
	ByToken map[string][]Deposit `json:"byToken"`
}

// Store is the in-memory transaction tracking state. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	version     uint64
	watched     map[string]WatchedTransaction
	inFlight    map[string]struct{}
	deposits    map[string][]Deposit
	withdrawals map[string]string

	broadcaster *Broadcaster
	publishers  []ChangePublisher
	now         func() time.Time

	pubMu     sync.Mutex
	pubTurn   *sync.Cond
	published uint64 // version of the last published change
}

type storeConfig struct {
	publishers []ChangePublisher
	bufferSize int
}

// StoreOption configures NewStore.
type StoreOption func(*storeConfig)

// WithChangePublisher registers an additional sink for store changes, such as
// a Redis channel read by other processes.
func WithChangePublisher(p ChangePublisher) StoreOption {
	return func(c *storeConfig) {
		c.publishers = append(c.publishers, p)
	}
}

// WithSubscriberBufferSize sets how many changes each in-process subscriber buffers.
func WithSubscriberBufferSize(n int) StoreOption {
	return func(c *storeConfig) {
		c.bufferSize = n
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...StoreOption) *Store {
	var cfg storeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	broadcaster := NewBroadcaster(cfg.bufferSize)

	s := &Store{
		watched:     make(map[string]WatchedTransaction),
		inFlight:    make(map[string]struct{}),
		deposits:    make(map[string][]Deposit),
		withdrawals: make(map[string]string),
		broadcaster: broadcaster,
		publishers:  append([]ChangePublisher{broadcaster}, cfg.publishers...),
		now:         time.Now,
	}
	s.pubTurn = sync.NewCond(&s.pubMu)

	return s
}

// newChange stamps c with a fresh ID, the next version and the current time.
// Callers must hold s.mu for writing.
func (s *Store) newChange(c Change) Change {
	s.version++

	c.ID = uuid.Must(uuid.NewV7()).String()
	c.Version = s.version
	c.OccurredAt = s.now().UTC()
	return c
}

// commit publishes c after the mutation that produced it. It must be called
// with s.mu held for writing and releases it before waiting, so readers and
// publishers may use the store while a publish is in progress. Changes reach
// publishers one at a time in version order.
func (s *Store) commit(ctx context.Context, c Change) {
	s.mu.Unlock()

	s.pubMu.Lock()
	for s.published+1 != c.Version {
		s.pubTurn.Wait()
	}
	s.pubMu.Unlock()

	s.publish(ctx, c)

	s.pubMu.Lock()
	s.published = c.Version
	s.pubTurn.Broadcast()
	s.pubMu.Unlock()
}

// publish hands c to every publisher.
func (s *Store) publish(ctx context.Context, c Change) {
	for _, p := range s.publishers {
		if err := p.PublishChange(ctx, c); err != nil {
			logger.Warn(ctx, "error publishing store change",
				"change.kind", c.Kind,
				"change.version", c.Version,
				"error", err,
			)
		}
	}
}

// RecordStatus sets the status of a watched transaction.
//
// StatusVerified removes the entry, and is a no-op when hash is not tracked.
// Any other status creates the entry or overwrites its status.
func (s *Store) RecordStatus(ctx context.Context, hash string, status Status) {
	s.mu.Lock()

	if status == StatusVerified {
		if _, ok := s.watched[hash]; !ok {
			s.mu.Unlock()
			return
		}
		delete(s.watched, hash)
	} else {
		s.watched[hash] = WatchedTransaction{Hash: hash, Status: status}
	}

	s.commit(ctx, s.newChange(Change{Kind: ChangeTransaction, Hash: hash, Status: status}))
}

// RecordDeposit creates or updates a deposit under its token symbol.
//
// An unknown hash is appended with the update's amount, status and
// confirmations. A known hash only has its status replaced; the amount and
// confirmations recorded first are kept.
func (s *Store) RecordDeposit(ctx context.Context, u DepositUpdate) {
	s.mu.Lock()

	list := s.deposits[u.TokenSymbol]
	idx := slices.IndexFunc(list, func(d Deposit) bool { return d.Hash == u.Hash })
	if idx == -1 {
		s.deposits[u.TokenSymbol] = append(list, Deposit{
			Hash:          u.Hash,
			Amount:        u.Amount,
			Status:        u.Status,
			Confirmations: u.Confirmations,
		})
	} else {
		list[idx].Status = u.Status
	}

	s.commit(ctx, s.newChange(Change{Kind: ChangeDeposit, Hash: u.Hash, TokenSymbol: u.TokenSymbol, Status: u.Status}))
}

// LinkWithdrawal maps a withdrawal to the transaction that settles it.
// An existing link is overwritten.
func (s *Store) LinkWithdrawal(ctx context.Context, withdrawalTxID, settlementTxID string) {
	s.mu.Lock()
	s.withdrawals[withdrawalTxID] = settlementTxID
	s.commit(ctx, s.newChange(Change{Kind: ChangeWithdrawalLink, Hash: withdrawalTxID, SettlementTxID: settlementTxID}))
}

// SettlementTx returns the settlement transaction linked to withdrawalTxID.
func (s *Store) SettlementTx(withdrawalTxID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.withdrawals[withdrawalTxID]
	return id, ok
}

// Transaction returns the watched transaction stored under hash.
func (s *Store) Transaction(hash string) (WatchedTransaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.watched[hash]
	return tx, ok
}

// Transactions returns all watched transactions ordered by hash.
func (s *Store) Transactions() []WatchedTransaction {
	s.mu.RLock()
	txs := slices.Collect(maps.Values(s.watched))
	s.mu.RUnlock()

	slices.SortFunc(txs, func(a, b WatchedTransaction) int { return cmp.Compare(a.Hash, b.Hash) })
	return txs
}

// Deposits returns a copy of every deposit grouped by token symbol, in
// insertion order, together with the version it reflects.
func (s *Store) Deposits() DepositsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byToken := make(map[string][]Deposit, len(s.deposits))
	for token, list := range s.deposits {
		byToken[token] = slices.Clone(list)
	}

	return DepositsSnapshot{Version: s.version, ByToken: byToken}
}

// ActiveDepositTotal sums, per token symbol, the amounts of deposits still in
// StatusInitiated. Tokens without such deposits are omitted. Amounts that are
// not base-10 integers are ignored.
func (s *Store) ActiveDepositTotal() map[string]*big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]*big.Int)
	for token, list := range s.deposits {
		for _, d := range list {
			if d.Status != StatusInitiated {
				continue
			}

			amount, ok := validator.ParseAmount(d.Amount)
			if !ok {
				continue
			}

			total, ok := totals[token]
			if !ok {
				total = new(big.Int)
				totals[token] = total
			}
			total.Add(total, amount)
		}
	}

	return totals
}

// Version returns the current version stamp.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Subscribe returns a channel of changes applied from now on. It is closed once ctx is done.
func (s *Store) Subscribe(ctx context.Context) <-chan Change {
	return s.broadcaster.Subscribe(ctx)
}

// claimWatch reserves hash for a transaction watch. It fails when a watch for
// hash is already running or the hash is tracked with a non-terminal status.
func (s *Store) claimWatch(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inFlight[hash]; ok {
		return false
	}

	if tx, ok := s.watched[hash]; ok && tx.Status != StatusFailed {
		return false
	}

	s.inFlight[hash] = struct{}{}
	return true
}

// releaseWatch drops the reservation taken by claimWatch.
func (s *Store) releaseWatch(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, hash)
}
