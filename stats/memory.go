package stats

import "sync"

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]Record{}}
}

func (s *MemoryStore) Apply(playerID string, result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[playerID]
	rec.Played++
	switch result {
	case Won:
		rec.Won++
	case Lost:
		rec.Lost++
	case Drawn:
		rec.Drawn++
	}
	s.records[playerID] = rec
	return nil
}

func (s *MemoryStore) Get(playerID string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[playerID], nil
}
