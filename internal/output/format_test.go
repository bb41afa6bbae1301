package output

import (
	"strings"
	"testing"
	"time"

	"github.com/cobalt-pine/chartline/internal/model"
)

var t0 = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestFormatNote(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventNote,
		Data:      model.NoteData{Author: "Dr. Osei", Email: "osei@example.org", Content: "Summary: improving."},
	}
	want := "[2026-03-10 14:30:00] NOTE by Dr. Osei: Summary: improving."
	if got := FormatEvent(e); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatNoteTruncated(t *testing.T) {
	long := strings.Repeat("x", 500)
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventNote,
		Data:      model.NoteData{Author: "Dr. Osei", Content: long},
	}
	got := FormatEvent(e)
	if strings.Count(got, "x") != 200 {
		t.Fatalf("expected content capped at 200 chars, got %d", strings.Count(got, "x"))
	}
}

func TestFormatOrder(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventOrder,
		Data:      model.OrderData{Investigation: "CBC", Action: "discontinued"},
	}
	want := "[2026-03-10 14:30:00] ORDER DISCONTINUED: CBC"
	if got := FormatEvent(e); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatLabCapsResults(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventLab,
		Data: model.LabData{
			Test:    "Metabolic Panel",
			Results: []string{"Na: 150 H", "K: 2.9 L", "Cl: 110 H", "HCO3: 15 L"},
		},
	}
	got := FormatEvent(e)
	if !strings.Contains(got, "Na: 150 H, K: 2.9 L, Cl: 110 H") {
		t.Fatalf("expected first three results, got %q", got)
	}
	if strings.Contains(got, "HCO3") {
		t.Fatalf("expected fourth result dropped, got %q", got)
	}
}

func TestFormatVitalsOrderedAndEmailExcluded(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventVital,
		Data: model.VitalData{
			Readings: map[string]string{"spo2": "91", "hr": "120"},
			Email:    "nurse@example.org",
		},
	}
	want := "[2026-03-10 14:30:00] VITALS: hr: 120, spo2: 91"
	if got := FormatEvent(e); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatIO(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventIO,
		Data:      model.IOData{Input: "Tube feed: 40mL", Output: "Drain: 25mL"},
	}
	want := "[2026-03-10 14:30:00] I/O: Input: Tube feed: 40mL, Output: Drain: 25mL"
	if got := FormatEvent(e); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatIOInputOnly(t *testing.T) {
	e := model.Event{
		Timestamp: t0,
		Type:      model.EventIO,
		Data:      model.IOData{Input: "PRBC: 250mL"},
	}
	want := "[2026-03-10 14:30:00] I/O: Input: PRBC: 250mL"
	if got := FormatEvent(e); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
