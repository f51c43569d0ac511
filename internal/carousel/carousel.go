package carousel

import (
	"fmt"
	"sync"
	"time"

	"github.com/ayurclinic/portal/pkg/logging"
)

// Carousel rotates through a fixed number of slides on a repeating period.
// A manual jump restarts the period so the next auto-advance happens a full
// period after the jump. At most one timer goroutine is ever live.
type Carousel struct {
	slides   int
	period   time.Duration
	onChange func(index int)
	logger   *logging.Logger

	mu      sync.Mutex
	current int
	done    chan struct{}
}

// New constructs a stopped carousel. onChange fires on every slide change,
// automatic or manual.
func New(slides int, period time.Duration, onChange func(index int), logger *logging.Logger) *Carousel {
	if slides <= 0 {
		panic("carousel: slide count must be positive")
	}
	if period <= 0 {
		panic("carousel: period must be positive")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if onChange == nil {
		onChange = func(int) {}
	}
	return &Carousel{
		slides:   slides,
		period:   period,
		onChange: onChange,
		logger:   logger,
	}
}

// Current returns the visible slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Start begins auto-advancing. Calling Start while running restarts the
// timer rather than stacking a second one.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restartLocked()
}

// GoTo jumps to the given slide and resets the auto-advance period.
func (c *Carousel) GoTo(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.slides {
		return fmt.Errorf("carousel: slide %d out of range [0,%d)", index, c.slides)
	}
	c.current = index
	c.onChange(index)
	if c.done != nil {
		c.restartLocked()
	}
	return nil
}

// Stop cancels the auto-advance timer. Idempotent.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Carousel) restartLocked() {
	c.stopLocked()
	done := make(chan struct{})
	c.done = done

	go func() {
		ticker := time.NewTicker(c.period)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.advance(done)
			}
		}
	}()
	c.logger.Debug("carousel timer started", "period", c.period)
}

func (c *Carousel) stopLocked() {
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

func (c *Carousel) advance(done chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A tick can race a restart; ignore ticks from a superseded timer.
	if c.done != done {
		return
	}
	c.current = (c.current + 1) % c.slides
	c.onChange(c.current)
}
