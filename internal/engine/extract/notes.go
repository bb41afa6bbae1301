package extract

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/notediff"
	"github.com/cobalt-pine/chartline/internal/engine/sanitize"
	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// skippedSection is dropped from every note during flattening.
const skippedSection = "Assessment"

// Notes flattens notes.finalNotes into note events. Serial notes by the same
// role pass through incremental diffing, so second-and-later notes surface
// only newly disclosed content; notes whose delta is empty are dropped.
// maxSectionLen caps sanitized section text before diffing (0 = no cap).
func Notes(doc *fastjson.Value, maxSectionLen int) []model.Event {
	var flat []notediff.Note
	for _, nv := range doc.GetArray("notes", "finalNotes") {
		ts := Text(nv, "createdTimestamp")
		if ts == "" {
			ts = Text(nv, "timestamp")
		}
		when, ok := timestamp.Parse(ts)
		if !ok {
			continue
		}

		note := notediff.Note{
			Timestamp: when,
			Author:    Text(nv, "author", "name"),
			Email:     Text(nv, "author", "email"),
			Role:      Text(nv, "author", "role"),
		}

		for _, item := range nv.GetArray("content") {
			// A content item may carry its own author; it silently
			// overrides the note-level one.
			if name := Text(item, "author", "name"); name != "" {
				note.Author = name
				if email := Text(item, "author", "email"); email != "" {
					note.Email = email
				}
				if role := Text(item, "author", "role"); role != "" {
					note.Role = role
				}
			}

			// Items either wrap a components list or are a component.
			comps := item.GetArray("components")
			if comps == nil {
				comps = []*fastjson.Value{item}
			}
			for _, comp := range comps {
				name := Text(comp, "displayName")
				if strings.EqualFold(name, skippedSection) {
					continue
				}
				text := sanitize.Clean(Text(comp, "value"))
				if text == "" {
					continue
				}
				if maxSectionLen > 0 && len(text) > maxSectionLen {
					text = text[:maxSectionLen]
				}
				note.Sections = append(note.Sections, notediff.Section{Name: name, Text: text})
			}
		}

		if note.Author == "" {
			note.Author = "Unknown"
		}
		if len(note.Sections) == 0 {
			continue
		}
		flat = append(flat, note)
	}

	var events []model.Event
	for _, res := range notediff.Diff(flat) {
		events = append(events, model.Event{
			Timestamp: res.Note.Timestamp,
			Type:      model.EventNote,
			Data: model.NoteData{
				Author:  res.Note.Author,
				Email:   res.Note.Email,
				Content: notediff.Render(res.Sections),
			},
		})
	}
	return events
}
