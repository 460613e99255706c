package audit

import (
	"context"
	"sort"
	"sync"

	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

// InMemoryStore is a Store for tests. FailWith makes every Append fail.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	ids     []id.AuditID
	failErr error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// FailWith makes subsequent appends return err; nil restores normal behavior.
func (s *InMemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.ids = nil
}

func (s *InMemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	s.entries = append(s.entries, entry)
	s.ids = append(s.ids, id.NewAuditID())
	return nil
}

// Entries returns a copy of every appended entry in insertion order.
func (s *InMemoryStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry{}, s.entries...)
}

// ByAction returns the appended entries with the given action.
func (s *InMemoryStore) ByAction(action Action) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, e := range s.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

func (s *InMemoryStore) List(_ context.Context, page Page) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page = page.Normalize()

	records := make([]Record, 0, len(s.entries))
	for i, e := range s.entries {
		records = append(records, toRecord(s.ids[i], e))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if page.Offset >= len(records) {
		return []Record{}, nil
	}
	end := min(page.Offset+page.Limit, len(records))
	return records[page.Offset:end], nil
}

func toRecord(auditID id.AuditID, e Entry) Record {
	r := Record{
		ID:            auditID,
		Action:        e.Action,
		EntityKind:    e.EntityKind,
		Prior:         e.Prior,
		New:           e.New,
		OriginAddress: e.OriginAddress,
		CreatedAt:     e.Timestamp,
	}
	if !e.ActorID.IsNil() {
		actor := e.ActorID.String()
		r.ActorID = &actor
	}
	if e.EntityID != uuid.Nil {
		entity := e.EntityID.String()
		r.EntityID = &entity
	}
	return r
}
