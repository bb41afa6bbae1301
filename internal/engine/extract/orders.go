package extract

import (
	"github.com/valyala/fastjson"

	"github.com/cobalt-pine/chartline/internal/engine/timestamp"
	"github.com/cobalt-pine/chartline/internal/model"
)

// Orders emits up to three lifecycle events per lab order across the active
// and inactive buckets: created, updated (only when the update timestamp
// differs from creation), and discontinued.
func Orders(doc *fastjson.Value) []model.Event {
	var events []model.Event
	for _, bucket := range []string{"active", "inactive"} {
		for _, lab := range doc.GetArray("orders", bucket, "labs") {
			events = append(events, orderEvents(lab)...)
		}
	}
	return events
}

func orderEvents(lab *fastjson.Value) []model.Event {
	investigation := Text(lab, "investigation")
	if investigation == "" {
		return nil
	}

	// Attribution priority: type-specific actor, else creator, else signer.
	email := Text(lab, "createdBy")
	if email == "" {
		email = Text(lab, "signed")
	}

	var events []model.Event
	add := func(ts, action, email string) {
		when, ok := timestamp.Parse(ts)
		if !ok {
			return
		}
		events = append(events, model.Event{
			Timestamp: when,
			Type:      model.EventOrder,
			Data: model.OrderData{
				Investigation: investigation,
				Action:        action,
				Email:         email,
			},
		})
	}

	createdAt := Text(lab, "createdAt")
	if createdAt != "" {
		add(createdAt, "created", email)
	}

	if updatedAt := Text(lab, "updatedAt"); updatedAt != "" && updatedAt != createdAt {
		add(updatedAt, "updated", email)
	}

	if discontinueAt := Text(lab, "discontinueAt"); discontinueAt != "" {
		discontinueEmail := Text(lab, "discontinueBy")
		if discontinueEmail == "" {
			discontinueEmail = email
		}
		add(discontinueAt, "discontinued", discontinueEmail)
	}
	return events
}
