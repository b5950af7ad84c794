package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// DefaultTickLength approximates one host frame.
	DefaultTickLength = 16 * time.Millisecond
)

// Manager is advanced once per driver tick.
type Manager interface {
	Tick(context.Context) error
}

// TickDriver calls every manager in order on a fixed interval. It is the only
// goroutine that touches tracker state.
type TickDriver struct {
	tickLength time.Duration
	managers   []Manager
	ticks      uint64
}

func NewTickDriver(managers []Manager, opts ...TickDriverOpt) *TickDriver {
	d := &TickDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *TickDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	slog.InfoContext(ctx, "tick driver started", "tick_length", d.tickLength, "managers", len(d.managers))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "tick driver stopped", "ticks", d.ticks)
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// Tick advances every manager once. The first failing manager stops the tick.
func (d *TickDriver) Tick(ctx context.Context) error {
	d.ticks++
	for i, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return fmt.Errorf("tick %d manager %d: %w", d.ticks, i, err)
		}
	}
	return nil
}

// Ticks returns how many ticks have run.
func (d *TickDriver) Ticks() uint64 {
	return d.ticks
}
