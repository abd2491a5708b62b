package noteboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"noteboard-backend/lib/render"

	"go.opentelemetry.io/otel/attribute"
)

// normalizeUserPayload decodes the per-user endpoint's JSON into a
// record sequence, wrapping a lone object into a one-element sequence.
func normalizeUserPayload(payload []byte) ([]render.Record, error) {
	var records []render.Record
	err := json.Unmarshal(payload, &records)
	if err == nil {
		return records, nil
	}

	var single render.Record
	err = json.Unmarshal(payload, &single)
	if err != nil {
		return nil, fmt.Errorf("payload is neither a record nor a record sequence: %w", err)
	}
	return []render.Record{single}, nil
}

func (c *Client) userNotesTarget(userKey string) string {
	query := url.Values{}
	query.Set("id", userKey)
	return c.UserNotesURL + "?" + query.Encode()
}

// DefaultUserNotesStrategies mirrors the historical order for the
// per-user endpoint: the json-envelope relay first, then a direct
// fetch.
func DefaultUserNotesStrategies() []Strategy {
	return []Strategy{
		{
			Name: "allorigins-get",
			BuildURL: func(target string) string {
				return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
			},
			Envelope: EnvelopeJSONContents,
		},
		{
			Name:     "direct",
			BuildURL: func(target string) string { return target },
		},
	}
}

// ResolveUserNotes fetches the notes of a single user from the
// dedicated endpoint. When both transports fail it silently degrades to
// filtering the full board by the user's identity key, so callers
// cannot distinguish "the server has nothing for this user" from "the
// direct query failed and this is a filtered approximation".
func (c *Client) ResolveUserNotes(ctx context.Context, userKey string) []render.Record {
	ctx, span := tracer.Start(ctx, "ResolveUserNotes")
	defer span.End()
	span.SetAttributes(attribute.String("user_key", userKey))

	target := c.userNotesTarget(userKey)

	for _, strat := range c.userNotesStrategies {
		payload, err := c.fetchMarkup(ctx, strat, target)
		if err != nil {
			slog.ErrorContext(
				ctx, "user notes strategy failed",
				"strategy", strat.Name,
				"err", err,
			)
			continue
		}
		records, err := normalizeUserPayload([]byte(payload))
		if err != nil {
			slog.ErrorContext(
				ctx, "user notes payload did not decode",
				"strategy", strat.Name,
				"err", err,
			)
			continue
		}
		span.SetAttributes(attribute.String("strategy", strat.Name))
		return records
	}

	slog.WarnContext(ctx, "user notes endpoint unreachable, filtering full dataset", "user_key", userKey)
	span.AddEvent("degraded to client-side filter")

	notes, _ := c.AcquireAll(ctx)
	var filtered []render.Record
	for _, n := range notes {
		if c.identity.Key(n.Firstname, n.Lastname) != userKey {
			continue
		}
		filtered = append(filtered, n.Record())
	}
	return filtered
}

// Record projects a note into the generic record shape consumed by the
// renderer, preserving field order.
func (n Note) Record() render.Record {
	return render.Record{
		{Key: "id", Value: n.SequentialID},
		{Key: "firstname", Value: n.Firstname},
		{Key: "lastname", Value: n.Lastname},
		{Key: "note", Value: n.Note},
		{Key: "date", Value: n.Date},
	}
}

// Records projects a note sequence for rendering.
func Records(notes []Note) []render.Record {
	records := make([]render.Record, len(notes))
	for i, n := range notes {
		records[i] = n.Record()
	}
	return records
}
