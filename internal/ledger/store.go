package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/pocketledger/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Keys of the four persisted collections.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyGoals        = "goals"
	KeySettings     = "settings"
)

// ErrCorrupt is returned when a persisted collection cannot be parsed. The
// collection still reads as empty so the application stays usable.
var ErrCorrupt = errors.New("corrupt data in storage")

// Event describes a completed mutation. Collection is one of the four
// collection keys.
type Event struct {
	Collection string
}

// Store is the record store and query engine. All access to the persisted
// collections goes through a Store instance; consumers get one injected
// instead of reaching for ambient global state.
//
// Every mutation is a full read-modify-persist cycle over one collection,
// guarded by a mutex. Writers in other processes sharing the same substrate
// are not coordinated.
type Store struct {
	kv storage.KV

	mu        sync.Mutex
	observers []func(Event)

	now func() time.Time
}

// New returns a Store reading and writing through kv.
func New(kv storage.KV) *Store {
	return &Store{
		kv: kv,
		now: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}
}

// OnChange registers an observer that is called after every completed
// mutation. Observers run on the mutating goroutine, after the write has
// been persisted.
func (s *Store) OnChange(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

func (s *Store) notify(collection string) {
	s.mu.Lock()
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(Event{Collection: collection})
	}
}

// newID generates an opaque identifier from the current time and a random
// component, both base36. Collisions are not formally prevented, only made
// astronomically unlikely.
func (s *Store) newID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

// load reads and parses one collection. A missing key yields the empty
// value. A parse failure yields the empty value and ErrCorrupt.
func load[T any](kv storage.KV, key string, empty T) (T, error) {
	raw, found, err := kv.Get(key)
	if err != nil {
		return empty, err
	}
	if !found {
		return empty, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Error().Str("key", key).Err(err).Msg("ledger")
		return empty, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}

	return value, nil
}

// loadForWrite reads a collection at the start of a read-modify-persist
// cycle. A corrupt collection degrades to empty so the write can proceed;
// substrate failures abort the write.
func loadForWrite[T any](kv storage.KV, key string, empty T) (T, error) {
	value, err := load(kv, key, empty)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return empty, err
	}

	return value, nil
}

func persist(kv storage.KV, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return kv.Set(key, string(raw))
}
