package idgen

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Bit layout: 41 bits of milliseconds since epoch, 10 bits of machine id,
// 12 bits of per-millisecond sequence.
const (
	sequenceBits = 12
	machineBits  = 10

	maxSequence = 1<<sequenceBits - 1
	maxMachine  = 1<<machineBits - 1

	// DefaultSnowflakeEpoch is 2024-01-01T00:00:00Z in unix milliseconds.
	DefaultSnowflakeEpoch int64 = 1704067200000

	// maxRollback is how far the wall clock may step back before Next fails.
	// Smaller steps are absorbed by staying on the last issued millisecond.
	maxRollback = 5
)

// Snowflake issues time-ordered 63-bit ids. Safe for concurrent use.
type Snowflake struct {
	epoch   int64
	machine int64
	clock   func() int64

	mu   sync.Mutex
	tick int64
	seq  int64
}

// NewSnowflake creates a Snowflake for machine in [0, 1023].
func NewSnowflake(machine, epoch int64) (*Snowflake, error) {
	if machine < 0 || machine > maxMachine {
		return nil, fmt.Errorf("machine id must be between 0 and %d, got %d", maxMachine, machine)
	}
	return &Snowflake{
		epoch:   epoch,
		machine: machine,
		clock:   func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Next returns the next id as an integer.
func (s *Snowflake) Next() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if now < s.epoch {
		return 0, fmt.Errorf("clock %d is before epoch %d", now, s.epoch)
	}

	switch {
	case now > s.tick:
		s.tick, s.seq = now, 0
	case s.tick-now > maxRollback:
		return 0, fmt.Errorf("clock moved back %dms", s.tick-now)
	default:
		s.seq++
		if s.seq > maxSequence {
			// Sequence exhausted: spin onto the next millisecond.
			for now <= s.tick {
				now = s.clock()
			}
			s.tick, s.seq = now, 0
		}
	}

	return (s.tick-s.epoch)<<(machineBits+sequenceBits) | s.machine<<sequenceBits | s.seq, nil
}

// Generate returns the next id in decimal.
func (s *Snowflake) Generate() (string, error) {
	id, err := s.Next()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}
