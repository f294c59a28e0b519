package websession

import (
	"context"
	"errors"
	"sync"

	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
)

// fakeStore implements webstorage.SessionStore in memory.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]webstorage.SessionRecord
	putErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]webstorage.SessionRecord{}}
}

func (f *fakeStore) PutSession(_ context.Context, record webstorage.SessionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.sessions[record.ID] = record
	return nil
}

func (f *fakeStore) GetSession(_ context.Context, id string) (webstorage.SessionRecord, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.sessions[id]
	return record, ok, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeStore) UpdateSessionOfferCount(_ context.Context, id string, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.sessions[id]
	if !ok {
		return errors.New("unknown session")
	}
	record.OfferCount = count
	f.sessions[id] = record
	return nil
}
