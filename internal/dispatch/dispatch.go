package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draganm/zonewriter/internal/models"
	"github.com/draganm/zonewriter/internal/routing"
)

// Appender appends a payload to a named file
type Appender interface {
	Append(name, payload string) error
}

// Dispatcher writes an invocation's zone to the files chosen by its file count
type Dispatcher struct {
	appender Appender
	log      *slog.Logger
}

// New creates a dispatcher. A nil logger falls back to slog.Default().
func New(appender Appender, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		appender: appender,
		log:      log,
	}
}

// Run appends inv.Zone to every target in order and stops at the first error.
// Targets written before the failure keep their new content.
func (d *Dispatcher) Run(ctx context.Context, inv models.Invocation) error {
	for _, name := range routing.Targets(inv.FileCount) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.appender.Append(name, inv.Zone); err != nil {
			return fmt.Errorf("failed to append zone: %w", err)
		}

		d.log.Debug("Appended zone",
			"file", name,
			"bytes", len(inv.Zone),
		)
	}

	return nil
}
