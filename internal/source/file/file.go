// Package file provides a patient-document source backed by a local JSON
// file, standing in for the upstream clinical API during development and
// tests.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/source"
)

func init() {
	source.Register("file", New)
}

// Source reads the patient document from a fixed path. The cpmrn/encounter
// key is accepted for interface parity but the file holds a single record.
type Source struct {
	path string
}

// New creates a file Source from the given config.
func New(cfg source.Config) source.Source {
	return &Source{path: cfg.Path}
}

// Fetch parses the file and returns the patient document. A top-level JSON
// array resolves to its first element, matching the export format of the
// upstream API. A missing file reads as patient-not-found.
func (s *Source) Fetch(_ context.Context, _ string, _ int) (*fastjson.Value, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("file source: %w", err)
	}

	var p fastjson.Parser
	doc, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("file source: parse %s: %w", s.path, err)
	}

	if doc.Type() == fastjson.TypeArray {
		arr := doc.GetArray()
		if len(arr) == 0 {
			return nil, nil
		}
		doc = arr[0]
	}
	return doc, nil
}
