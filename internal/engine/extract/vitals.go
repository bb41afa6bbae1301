package extract

import (
	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/abnormal"
	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// Source field → canonical reading key. FiO2 and patient position are never
// classified, so they are excluded here rather than filtered later.
var vitalFields = []struct {
	field string
	key   string
}{
	{"daysTemperature", "temp"},
	{"daysHR", "hr"},
	{"daysRR", "rr"},
	{"daysBP", "bp"},
	{"daysMAP", "map"},
	{"daysCVP", "cvp"},
	{"daysSpO2", "spo2"},
	{"daysGCS", "gcs"},
	{"daysAVPU", "avpu"},
}

// Vitals turns discrete readings into vital events, retaining only fields
// outside their reference range. A reading with no abnormal field produces
// no event.
func Vitals(doc *fastjson.Value) []model.Event {
	var events []model.Event
	for _, v := range doc.GetArray("vitals") {
		when, ok := timestamp.Parse(Text(v, "timestamp"))
		if !ok {
			continue
		}

		readings := make(map[string]string)
		for _, f := range vitalFields {
			value := Text(v, f.field)
			if value == "" {
				continue
			}
			if f.key == "temp" {
				if unit := Text(v, "daysTemperatureUnit"); unit != "" {
					value += unit
				}
			}
			if abnormal.Vital(f.key, value) {
				readings[f.key] = value
			}
		}
		if len(readings) == 0 {
			continue
		}

		events = append(events, model.Event{
			Timestamp: when,
			Type:      model.EventVital,
			Data: model.VitalData{
				Readings: readings,
				Email:    Text(v, "verifiedBy", "email"),
			},
		})
	}
	return events
}
