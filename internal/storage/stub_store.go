package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// StubStore is an in-memory Store for tests. Data round-trips through JSON so
// stub behavior matches the file-backed implementation.
type StubStore struct {
	data map[string][]byte
	// SaveErr makes Save fail for the given collection.
	SaveErr map[string]error
}

func NewStubStore() *StubStore {
	return &StubStore{
		data:    map[string][]byte{},
		SaveErr: map[string]error{},
	}
}

func (s *StubStore) Load(ctx context.Context, collection string, out any) error {
	content, ok := s.data[collection]
	if !ok {
		return nil
	}
	return json.Unmarshal(content, out)
}

func (s *StubStore) Save(ctx context.Context, collection string, data any) error {
	if err := s.SaveErr[collection]; err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	content, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.data[collection] = content
	return nil
}

func (s *StubStore) Cleanup() {
	s.data = map[string][]byte{}
	s.SaveErr = map[string]error{}
}
