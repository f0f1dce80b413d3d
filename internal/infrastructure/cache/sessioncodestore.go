package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/goroutine"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

const (
	// DefaultSessionCodeTTL is how long an unclaimed session code stays valid
	DefaultSessionCodeTTL = 5 * time.Minute
	// DefaultSweepInterval is how often expired codes are pruned
	DefaultSweepInterval = 5 * time.Minute

	sessionCodeBytes = 32
)

// SessionGrant is what a one-time session code redeems to.
type SessionGrant struct {
	Credential string `json:"credential"`
	AccountRef string `json:"account_ref"`
}

func newSessionCode() (string, error) {
	buf := make([]byte, sessionCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

type memoryEntry struct {
	grant     SessionGrant
	expiresAt time.Time
}

// MemorySessionCodeStore keeps single-use session codes in process memory.
// A background sweep prunes codes nobody claimed.
type MemorySessionCodeStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	logger  logger.Interface

	cancel context.CancelFunc
	done   <-chan struct{}
}

// NewMemorySessionCodeStore starts the store and its sweep loop. Call Close to stop it.
func NewMemorySessionCodeStore(log logger.Interface, ttl, sweepInterval time.Duration) *MemorySessionCodeStore {
	if ttl <= 0 {
		ttl = DefaultSessionCodeTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &MemorySessionCodeStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		logger:  log,
		cancel:  cancel,
	}
	s.done = goroutine.Every(ctx, log, "session-code-sweep", sweepInterval, func() {
		if n := s.Sweep(); n > 0 {
			s.logger.Debugw("pruned expired session codes", "count", n)
		}
	})
	return s
}

func (s *MemorySessionCodeStore) Put(ctx context.Context, grant SessionGrant) (string, error) {
	code, err := newSessionCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[code] = memoryEntry{grant: grant, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return code, nil
}

// Take returns the grant for code and forgets it. Unknown, used and expired
// codes all yield (nil, nil).
func (s *MemorySessionCodeStore) Take(ctx context.Context, code string) (*SessionGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[code]
	if !ok {
		return nil, nil
	}
	delete(s.entries, code)
	if !s.now().Before(entry.expiresAt) {
		return nil, nil
	}
	return &entry.grant, nil
}

// Sweep removes every expired code and reports how many went.
func (s *MemorySessionCodeStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for code, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, code)
			removed++
		}
	}
	return removed
}

func (s *MemorySessionCodeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the sweep loop and waits for it to exit.
func (s *MemorySessionCodeStore) Close() error {
	s.cancel()
	<-s.done
	return nil
}
