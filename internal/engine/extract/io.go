package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// IntakeOutput walks io.days[].hours[].minutes[] and reconstructs a concrete
// instant for each charted minute from the day's date plus the hour/minute
// indices. Slots whose indices fail to parse or fall out of range are
// skipped; a minute with neither intake nor output text produces no event.
func IntakeOutput(doc *fastjson.Value) []model.Event {
	var events []model.Event
	for _, day := range doc.GetArray("io", "days") {
		dayDate, ok := timestamp.Parse(Text(day, "dayDate"))
		if !ok {
			continue
		}
		for _, hour := range day.GetArray("hours") {
			h, err := strconv.Atoi(Text(hour, "hourName"))
			if err != nil || h < 0 || h > 23 {
				continue
			}
			for _, minute := range hour.GetArray("minutes") {
				m, err := strconv.Atoi(Text(minute, "minuteName"))
				if err != nil || m < 0 || m > 59 {
					continue
				}

				input := intakeSummary(minute.Get("intake"))
				output := outputSummary(minute.Get("output"))
				if input == "" && output == "" {
					continue
				}

				when := time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(),
					h, m, 0, 0, dayDate.Location())
				events = append(events, model.Event{
					Timestamp: when,
					Type:      model.EventIO,
					Data:      model.IOData{Input: input, Output: output},
				})
			}
		}
	}
	return events
}

func intakeSummary(intake *fastjson.Value) string {
	if intake == nil {
		return ""
	}
	var parts []string
	if amt := amount(intake, "feeds", "tube", "amount"); amt != "" {
		parts = append(parts, "Tube feed: "+amt+"mL")
	}
	for _, route := range []string{"infusion", "bolus"} {
		for _, med := range intake.GetArray("meds", route) {
			amt := amount(med, "amount")
			if amt == "" {
				continue
			}
			name := Text(med, "name")
			if name == "" {
				name = "Medication"
			}
			parts = append(parts, name+": "+amt+"mL")
		}
	}
	if amt := amount(intake, "bloodProducts", "prbc", "amount"); amt != "" {
		parts = append(parts, "PRBC: "+amt+"mL")
	}
	return strings.Join(parts, ", ")
}

func outputSummary(output *fastjson.Value) string {
	if output == nil {
		return ""
	}
	var parts []string
	if amt := amount(output, "stool", "amount"); amt != "" {
		parts = append(parts, strings.TrimSpace("Stool: "+amt+" "+Text(output, "stool", "note")))
	}
	for _, src := range []struct{ key, label string }{
		{"drain", "Drain"},
		{"procedure", "Procedure"},
		{"dialysis", "Dialysis"},
	} {
		for _, item := range output.GetArray(src.key) {
			if amt := amount(item, "amount"); amt != "" {
				parts = append(parts, src.label+": "+amt+"mL")
			}
		}
	}
	return strings.Join(parts, ", ")
}
