package noteboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/attribute"
)

// Envelope describes how a relay wraps the true payload.
type Envelope int

const (
	// EnvelopeNone means the response body is the payload itself.
	EnvelopeNone Envelope = iota
	// EnvelopeJSONContents means the response is a JSON object whose
	// `contents` field holds the payload.
	EnvelopeJSONContents
)

// Strategy is one concrete transport for acquiring the board page.
// BuildURL receives the cache-busted target so relays bust the cache of
// the target rather than their own.
type Strategy struct {
	Name     string
	BuildURL func(target string) string
	Envelope Envelope
}

// DefaultStrategies reproduces the board's historical fallback order:
// a direct fetch, then public relay services of decreasing reliability.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:     "direct",
			BuildURL: func(target string) string { return target },
		},
		{
			Name: "allorigins-raw",
			BuildURL: func(target string) string {
				return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
			},
		},
		{
			Name: "allorigins-get",
			BuildURL: func(target string) string {
				return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
			},
			Envelope: EnvelopeJSONContents,
		},
		{
			Name: "cors-anywhere",
			BuildURL: func(target string) string {
				return "https://cors-anywhere.herokuapp.com/" + target
			},
		},
		{
			Name: "thingproxy",
			BuildURL: func(target string) string {
				return "https://thingproxy.freeboard.io/fetch/" + target
			},
		},
	}
}

// cacheBustedTarget appends a uniqueness token so a stale intermediary
// cache cannot mask a retry.
func (c *Client) cacheBustedTarget() string {
	token, err := random.String(8)
	if err != nil {
		token = "0"
	}

	link := *c.NotesURL
	query := link.Query()
	query.Set("t", fmt.Sprint(time.Now().UnixNano()))
	query.Set("r", token)
	link.RawQuery = query.Encode()
	return link.String()
}

func unwrapEnvelope(envelope Envelope, body []byte) (string, error) {
	switch envelope {
	case EnvelopeJSONContents:
		var wrapper struct {
			Contents string `json:"contents"`
		}
		err := json.Unmarshal(body, &wrapper)
		if err != nil {
			return "", fmt.Errorf("malformed relay envelope: %w", err)
		}
		if wrapper.Contents == "" {
			return "", fmt.Errorf("relay envelope is missing contents")
		}
		return wrapper.Contents, nil
	default:
		return string(body), nil
	}
}

// fetchMarkup runs a single strategy to completion and returns the
// unwrapped payload.
func (c *Client) fetchMarkup(ctx context.Context, strat Strategy, target string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(strat.BuildURL(target))
	if err != nil {
		return "", err
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("status %d", res.StatusCode())
	}
	return unwrapEnvelope(strat.Envelope, res.Body())
}

// AcquireAll fetches and extracts the full board. Strategies run
// strictly in order, each allowed to complete or fail before the next
// begins; the first strategy whose markup extracts to a non-empty note
// sequence is final. An empty extraction advances to the next strategy
// the same way a transport failure does, since it usually means the
// strategy fetched a page shape the extractor cannot read.
//
// AcquireAll never fails: when every strategy errors or extracts to
// empty it serves the built-in sample dataset, and the returned
// Provenance is the only way to tell the difference.
func (c *Client) AcquireAll(ctx context.Context) ([]Note, Provenance) {
	ctx, span := tracer.Start(ctx, "AcquireAll")
	defer span.End()

	target := c.cacheBustedTarget()

	for _, strat := range c.strategies {
		markup, err := c.fetchMarkup(ctx, strat, target)
		if err != nil {
			slog.ErrorContext(
				ctx, "strategy failed",
				"strategy", strat.Name,
				"err", err,
			)
			continue
		}

		notes, err := ExtractNotes(ctx, markup)
		if err != nil {
			slog.ErrorContext(
				ctx, "strategy returned unparseable markup",
				"strategy", strat.Name,
				"err", err,
			)
			continue
		}
		if len(notes) == 0 {
			slog.WarnContext(
				ctx, "strategy extracted zero notes, trying next",
				"strategy", strat.Name,
			)
			continue
		}

		span.SetAttributes(
			attribute.String("strategy", strat.Name),
			attribute.Int("notes", len(notes)),
		)
		return notes, Provenance{Strategy: strat.Name}
	}

	slog.WarnContext(ctx, "all acquisition strategies failed, serving fallback dataset")
	span.AddEvent("served fallback dataset")
	return MockNotes(), Provenance{}
}
