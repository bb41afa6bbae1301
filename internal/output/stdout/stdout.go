// Package stdout writes timeline events to standard output, either as
// human-readable display lines or as NDJSON for downstream consumers.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cobalt-pine/chartline/internal/model"
	"github.com/cobalt-pine/chartline/internal/output"
)

// Output writes events to stdout.
type Output struct {
	w    io.Writer
	enc  *json.Encoder
	json bool
}

// New creates a stdout Output. When asJSON is true, events are emitted as
// NDJSON; otherwise as display lines.
func New(asJSON bool) *Output {
	return NewWriter(os.Stdout, asJSON)
}

// NewWriter creates an Output against an arbitrary writer; used by tests.
func NewWriter(w io.Writer, asJSON bool) *Output {
	return &Output{w: w, enc: json.NewEncoder(w), json: asJSON}
}

func (o *Output) Write(_ context.Context, event model.Event) error {
	if o.json {
		if err := o.enc.Encode(event); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(o.w, output.FormatEvent(event)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
