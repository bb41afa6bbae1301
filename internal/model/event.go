package model

import (
	"encoding/json"
	"time"
)

// EventType tags the five kinds of timeline events.
type EventType string

const (
	EventNote  EventType = "note"
	EventOrder EventType = "order"
	EventLab   EventType = "lab"
	EventVital EventType = "vital"
	EventIO    EventType = "io"
)

// EventData is the kind-specific payload of a timeline event. Every payload
// carries an attribution email, which may be empty when the source names no
// actor for the entry.
type EventData interface {
	Kind() EventType
	AttributionEmail() string
}

// Event is one normalized, timestamped, attributed fact extracted from the
// patient record. Timestamp is never the zero value: entries whose timestamp
// cannot be parsed are dropped during extraction, not emitted with a sentinel.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Data      EventData `json:"data"`
}

// NoteData is the payload of a clinical note event. Content holds the
// "<section>: <text>" pairs that survived incremental diffing, joined by " | ".
type NoteData struct {
	Author  string `json:"author"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

func (NoteData) Kind() EventType            { return EventNote }
func (d NoteData) AttributionEmail() string { return d.Email }

// OrderData is the payload of a lab-order lifecycle event. Action is one of
// "created", "updated", or "discontinued".
type OrderData struct {
	Investigation string `json:"investigation"`
	Action        string `json:"action"`
	Email         string `json:"email"`
}

func (OrderData) Kind() EventType            { return EventOrder }
func (d OrderData) AttributionEmail() string { return d.Email }

// LabData is the payload of a lab-report event. Results holds only the
// "name: value" strings flagged abnormal; a document with no abnormal
// results produces no event at all.
type LabData struct {
	Test       string   `json:"test"`
	Results    []string `json:"results"`
	ReportedAt string   `json:"reportedAt"`
	Email      string   `json:"email"`
}

func (LabData) Kind() EventType            { return EventLab }
func (d LabData) AttributionEmail() string { return d.Email }

// VitalData is the payload of a vital-signs event. Readings maps canonical
// field keys (temp, hr, rr, bp, map, cvp, spo2, gcs, avpu) to the raw values
// that fell outside their reference range.
type VitalData struct {
	Readings map[string]string `json:"-"`
	Email    string            `json:"email"`
}

func (VitalData) Kind() EventType            { return EventVital }
func (d VitalData) AttributionEmail() string { return d.Email }

// MarshalJSON inlines the readings next to the email so the serialized form
// stays a flat field→value mapping.
func (d VitalData) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(d.Readings)+1)
	for k, v := range d.Readings {
		m[k] = v
	}
	m["email"] = d.Email
	return json.Marshal(m)
}

// IOData is the payload of an intake/output event. Input and Output are
// comma-joined human-readable fragments; at least one is non-empty. The
// source records no actor on intake/output rows, so Email stays empty.
type IOData struct {
	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`
	Email  string `json:"email"`
}

func (IOData) Kind() EventType            { return EventIO }
func (d IOData) AttributionEmail() string { return d.Email }
