package extract

import (
	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/abnormal"
	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// LabReports turns the flat documents list into lab events. Each document's
// attributes are formatted as "name: value" and filtered through the lab
// abnormality check; a document with no abnormal attribute produces no event.
func LabReports(doc *fastjson.Value) []model.Event {
	var events []model.Event
	for _, d := range doc.GetArray("documents") {
		name := Text(d, "name")
		if name == "" {
			continue
		}
		when, ok := timestamp.Parse(Text(d, "updatedAt"))
		if !ok {
			continue
		}

		var results []string
		if attrs := d.GetObject("attributes"); attrs != nil {
			attrs.Visit(func(key []byte, av *fastjson.Value) {
				value := Text(av, "value")
				if value == "" {
					return
				}
				formatted := string(key) + ": " + value
				if abnormal.LabResult(formatted) {
					results = append(results, formatted)
				}
			})
		}
		if len(results) == 0 {
			continue
		}

		reported := Text(d, "reportedAt")
		if reported != "" {
			if rt, ok := timestamp.Parse(reported); ok {
				reported = rt.Format("2006-01-02 15:04:05")
			}
		}

		events = append(events, model.Event{
			Timestamp: when,
			Type:      model.EventLab,
			Data: model.LabData{
				Test:       name,
				Results:    results,
				ReportedAt: reported,
				Email:      Text(d, "verified", "by", "email"),
			},
		})
	}
	return events
}
