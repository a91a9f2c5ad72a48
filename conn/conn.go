// Package conn mirrors console output to a debug port on an I²C or SPI bus.
//
// A [Port] queues bytes without blocking, so it can be attached to a console
// writer whose lock is held while bytes are routed. Queued bytes are sent
// when [Port.Flush] is called outside the lock.
package conn

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/textmode/internal/logger"
)

var log = logger.New("conn")

// Errors
var (
	ErrClosed = errors.New("conn: port is closed")
)

// Config describes the queueing behaviour of a port.
type Config struct {
	// QueueSize is the maximum number of bytes held between flushes.
	QueueSize int

	// BatchSize is the maximum number of bytes per bus transaction.
	BatchSize int

	// Activity pin, driven high while a flush is in progress.
	Activity gpio.PinOut
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	QueueSize: 4096,
	BatchSize: 32,
}

// Port is a buffered debug mirror over a periph connection.
type Port struct {
	mu       sync.Mutex
	c        conn.Conn
	closer   func() error
	queue    []byte
	size     int
	batch    int
	activity gpio.PinOut
	dropped  uint64
	closed   bool
}

// New wraps c. A nil config selects [DefaultConfig].
func New(c conn.Conn, config *Config) *Port {
	cfg := DefaultConfig
	if config != nil {
		cfg = *config
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig.QueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig.BatchSize
	}
	return &Port{
		c:        c,
		queue:    make([]byte, 0, cfg.QueueSize),
		size:     cfg.QueueSize,
		batch:    cfg.BatchSize,
		activity: cfg.Activity,
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("debug mirror on %s", p.c)
}

// WriteByte queues b. When the queue is full the byte is dropped and counted.
// It never blocks on the bus.
func (p *Port) WriteByte(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if len(p.queue) >= p.size {
		p.dropped++
		return nil
	}
	p.queue = append(p.queue, b)
	return nil
}

// Dropped is the number of bytes discarded because the queue was full.
func (p *Port) Dropped() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Pending is the number of queued bytes.
func (p *Port) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Flush sends all queued bytes in batches. Bytes are removed from the queue
// only after their batch was sent.
func (p *Port) Flush() (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if len(p.queue) == 0 {
		return nil
	}

	if p.activity != nil {
		if err = p.activity.Out(gpio.High); err != nil {
			return fmt.Errorf("conn: activity pin: %w", err)
		}
		defer func() {
			if lerr := p.activity.Out(gpio.Low); lerr != nil && err == nil {
				err = fmt.Errorf("conn: activity pin: %w", lerr)
			}
		}()
	}

	log.Debugf("flush %d bytes in %d batches", len(p.queue), (len(p.queue)+p.batch-1)/p.batch)
	sent := 0
	for sent < len(p.queue) {
		end := min(sent+p.batch, len(p.queue))
		if err = p.c.Tx(p.queue[sent:end], nil); err != nil {
			break
		}
		sent = end
	}
	p.queue = p.queue[:copy(p.queue, p.queue[sent:])]
	return
}

// Close flushes pending bytes and closes the underlying bus, if the port
// opened it.
func (p *Port) Close() error {
	err := p.Flush()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.closer != nil {
		if cerr := p.closer(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
