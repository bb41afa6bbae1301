package output

import (
	"fmt"
	"strings"

	"github.com/cobalt-pine/chartline/internal/model"
)

const (
	lineTimeLayout = "2006-01-02 15:04:05"
	// Note content is capped per line; the full text stays on the event.
	maxNoteLineLen = 200
	// Lab lines show at most this many results.
	maxLabResults = 3
)

// Display order for vital readings; map iteration order would shuffle lines
// between runs.
var vitalOrder = []string{"temp", "hr", "rr", "bp", "map", "cvp", "spo2", "gcs", "avpu"}

// FormatEvent renders one event as a single display line, the shape consumed
// by the timeline view and by the summarization prompt built on top of it.
func FormatEvent(e model.Event) string {
	ts := e.Timestamp.Format(lineTimeLayout)

	switch d := e.Data.(type) {
	case model.NoteData:
		return fmt.Sprintf("[%s] NOTE by %s: %s", ts, d.Author, truncate(d.Content, maxNoteLineLen))

	case model.OrderData:
		return fmt.Sprintf("[%s] ORDER %s: %s", ts, strings.ToUpper(d.Action), d.Investigation)

	case model.LabData:
		results := d.Results
		if len(results) > maxLabResults {
			results = results[:maxLabResults]
		}
		return fmt.Sprintf("[%s] LAB: %s - %s", ts, d.Test, strings.Join(results, ", "))

	case model.VitalData:
		parts := make([]string, 0, len(d.Readings))
		for _, key := range vitalOrder {
			if v, ok := d.Readings[key]; ok {
				parts = append(parts, key+": "+v)
			}
		}
		return fmt.Sprintf("[%s] VITALS: %s", ts, strings.Join(parts, ", "))

	case model.IOData:
		var parts []string
		if d.Input != "" {
			parts = append(parts, "Input: "+d.Input)
		}
		if d.Output != "" {
			parts = append(parts, "Output: "+d.Output)
		}
		return fmt.Sprintf("[%s] I/O: %s", ts, strings.Join(parts, ", "))
	}

	return fmt.Sprintf("[%s] %s", ts, strings.ToUpper(string(e.Type)))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
