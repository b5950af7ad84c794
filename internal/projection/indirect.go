package projection

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-questmap/internal/game"
)

// ProjectFunc is a resolved call handle for the indirect tier.
type ProjectFunc func(locationId string, tile game.Tile) (game.Pixel, error)

// HandleResolver produces the indirect tier's call handle. It is called at
// most once per tier.
type HandleResolver func() (ProjectFunc, error)

// Indirect is the second tier. It lazily resolves a call handle on first use.
// If resolution fails the tier disables itself for good; a failing call with a
// good handle only fails that call.
type Indirect struct {
	resolve  HandleResolver
	handle   ProjectFunc
	disabled bool
}

// NewIndirect creates the tier. A nil resolver disables it from the start.
func NewIndirect(resolve HandleResolver) *Indirect {
	return &Indirect{
		resolve:  resolve,
		disabled: resolve == nil,
	}
}

func (i *Indirect) Name() string { return "indirect" }

func (i *Indirect) Project(loc game.Location, tile game.Tile) (game.Pixel, error) {
	if i.disabled {
		return game.Pixel{}, ErrUnavailable
	}

	if i.handle == nil {
		h, err := i.resolveHandle()
		if err != nil {
			i.disabled = true
			slog.Warn("indirect projection disabled", "error", err)
			return game.Pixel{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		i.handle = h
	}

	return i.handle(loc.Id(), tile)
}

func (i *Indirect) resolveHandle() (h ProjectFunc, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolving handle panicked: %v", r)
		}
	}()

	h, err = i.resolve()
	if err == nil && h == nil {
		err = fmt.Errorf("resolver returned no handle")
	}
	return h, err
}

// Active reports whether the tier holds a resolved handle and is still enabled.
func (i *Indirect) Active() bool {
	return !i.disabled && i.handle != nil
}

// Disabled reports whether the tier has been switched off.
func (i *Indirect) Disabled() bool {
	return i.disabled
}

// Disable switches the tier off for the rest of the session.
func (i *Indirect) Disable() {
	i.disabled = true
	slog.Info("indirect projection manually disabled")
}
