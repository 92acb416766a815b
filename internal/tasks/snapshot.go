package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptSnapshot is returned by Load when the slot holds something other
// than a JSON array of tasks.
var ErrCorruptSnapshot = errors.New("corrupt task snapshot")

// Slot is a single-key persistent store. *storage.Store satisfies it.
type Slot interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Snapshot reads and writes the whole collection under one key. There are no
// partial updates.
type Snapshot struct {
	slot Slot
	key  string
}

func NewSnapshot(slot Slot, key string) *Snapshot {
	return &Snapshot{slot: slot, key: key}
}

func (s *Snapshot) Key() string {
	return s.key
}

// Load returns the persisted collection. A missing key is an empty
// collection. Unparseable content is an error; nothing is repaired.
func (s *Snapshot) Load() (Collection, error) {
	raw, ok, err := s.slot.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok {
		return Collection{}, nil
	}
	var c Collection
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorruptSnapshot, s.key, err)
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

func (s *Snapshot) Save(c Collection) error {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.slot.Put(s.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	return nil
}
