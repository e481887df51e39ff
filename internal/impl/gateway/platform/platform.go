package impl_platform

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SystemClock returns UTC wall time that never repeats or goes backwards
// within the process, so creation times order transfers the way they were
// made.
type SystemClock struct {
	mu   sync.Mutex
	last time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	now := time.Now().UTC().Round(0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now

	return now
}

// UUIDGenerator issues version 7 ids, which sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewUUID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
