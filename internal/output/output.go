package output

import (
	"context"

	"github.com/cobalt-pine/chartline/internal/model"
)

// Output defines the interface for timeline event destinations.
type Output interface {
	Write(ctx context.Context, event model.Event) error
	Close() error
}
