package credentials

// MemoryStore keeps the credential record in memory. It exists so the
// login/authenticated-call logic can be exercised without touching the
// filesystem.
type MemoryStore struct {
	record *Record
}

func (s *MemoryStore) Load() (*Record, error) {
	if s.record == nil {
		return nil, nil
	}
	copied := *s.record
	return &copied, nil
}

func (s *MemoryStore) Save(record Record) error {
	s.record = &record
	return nil
}

func (s *MemoryStore) Clear() error {
	s.record = nil
	return nil
}
