package experience

import (
	"sync"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

// Sample is one training example: the position as seen by the player who
// moved, the move they chose and the reward assigned once the game resolved.
type Sample struct {
	GameID      string    `json:"game_id"`
	PlayNumber  int       `json:"play_number"`
	PlayerID    int       `json:"player_id"`
	Observation []float32 `json:"observation"`
	Move        core.Move `json:"move"`
	Reward      float32   `json:"reward"`
	Terminal    bool      `json:"terminal"`
}

// Buffer accumulates samples up to a fixed capacity, evicting the oldest
// entries once full. It is safe for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	samples  []Sample
	capacity int
	dropped  int
}

// NewBuffer creates a buffer holding at most capacity samples.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer{
		samples:  make([]Sample, 0, capacity),
		capacity: capacity,
	}
}

// Add appends samples, evicting the oldest when the buffer is full.
func (b *Buffer) Add(samples ...Sample) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range samples {
		if len(b.samples) == b.capacity {
			copy(b.samples, b.samples[1:])
			b.samples = b.samples[:b.capacity-1]
			b.dropped++
		}
		b.samples = append(b.samples, s)
	}
}

// Len returns the number of buffered samples.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Dropped returns how many samples have been evicted since creation.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Samples returns a copy of the buffered samples in insertion order.
func (b *Buffer) Samples() []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Sample, len(b.samples))
	copy(out, b.samples)
	return out
}

// Drain returns all buffered samples and empties the buffer.
func (b *Buffer) Drain() []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.samples
	b.samples = make([]Sample, 0, b.capacity)
	return out
}
