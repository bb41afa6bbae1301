// Package engine assembles the unified patient timeline. It is a pure,
// synchronous computation over an in-memory document: no I/O, no logging,
// no state between invocations, safe to call concurrently for different
// records.
package engine

import (
	"sort"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/extract"
	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// admissionLayout is the fixed display pattern for the ICU admission instant.
const admissionLayout = "01/02/2006 15:04"

// Engine derives the event timeline and patient summary from one parsed
// patient document.
type Engine struct {
	maxSectionLen int
}

// New creates an Engine. maxSectionLen caps sanitized note-section length
// before diffing; zero disables the cap.
func New(maxSectionLen int) *Engine {
	return &Engine{maxSectionLen: maxSectionLen}
}

// Timeline runs every extractor once and merges their outputs into a single
// ascending sequence. The sort is stable, so events with equal timestamps
// keep extractor order: notes, orders, labs, vitals, io. A nil document
// yields an empty timeline.
func (e *Engine) Timeline(doc *fastjson.Value) []model.Event {
	if doc == nil {
		return nil
	}

	var events []model.Event
	events = append(events, extract.Notes(doc, e.maxSectionLen)...)
	events = append(events, extract.Orders(doc)...)
	events = append(events, extract.LabReports(doc)...)
	events = append(events, extract.Vitals(doc)...)
	events = append(events, extract.IntakeOutput(doc)...)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}

// PatientInfo derives the flat display summary, independent of the timeline.
// Absent fields render the "N/A" placeholder, never an empty string.
func (e *Engine) PatientInfo(doc *fastjson.Value) model.PatientInfo {
	info := model.PatientInfo{
		Name:      model.Unknown,
		MRN:       model.Unknown,
		DOB:       model.Unknown,
		Age:       model.Unknown,
		Sex:       model.Unknown,
		Admission: model.Unknown,
		Diagnosis: model.Unknown,
	}
	if doc == nil {
		return info
	}

	first := extract.Text(doc, "name")
	last := extract.Text(doc, "lastName")
	switch {
	case first != "" && last != "":
		info.Name = first + ", " + last
	case first != "":
		info.Name = first
	case last != "":
		info.Name = last
	}

	if mrn := extract.Text(doc, "MRN"); mrn != "" {
		info.MRN = mrn
	} else if cpmrn := extract.Text(doc, "CPMRN"); cpmrn != "" {
		info.MRN = cpmrn
	}

	if dob := extract.Text(doc, "dob"); dob != "" {
		info.DOB = dob
	}
	if age := extract.Text(doc, "age", "year"); age != "" {
		info.Age = age
	}
	if sex := extract.Text(doc, "sex"); sex != "" {
		info.Sex = sex
	}

	if admit := extract.Text(doc, "ICUAdmitDate"); admit != "" {
		if t, ok := timestamp.Parse(admit); ok {
			info.Admission = t.Format(admissionLayout)
		} else {
			// Unparseable admit dates pass through raw rather than vanish.
			info.Admission = admit
		}
	}

	var diagnoses []string
	for _, d := range doc.GetArray("diagnoses") {
		if d.Type() == fastjson.TypeString {
			diagnoses = append(diagnoses, string(d.GetStringBytes()))
		}
	}
	if len(diagnoses) > 0 {
		info.Diagnosis = strings.Join(diagnoses, ", ")
	}

	return info
}
