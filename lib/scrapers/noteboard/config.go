package noteboard

import (
	"net/url"
	"strings"
	"time"
)

// StrategyConfig is the declarative form of a transport strategy, as it
// appears in noteboard.json5. Template is the relay URL with one of two
// placeholders: "{target}" for the query-escaped target url or
// "{target_raw}" for the target spliced in verbatim (path-prefix
// relays). An empty template is a direct fetch.
type StrategyConfig struct {
	Name     string `json:"name"`
	Template string `json:"template"`
	// Envelope is "" for raw payloads or "json_contents" for relays
	// that wrap the payload in a json object's `contents` field.
	Envelope string `json:"envelope"`
}

func (sc StrategyConfig) strategy() Strategy {
	envelope := EnvelopeNone
	if sc.Envelope == "json_contents" {
		envelope = EnvelopeJSONContents
	}
	template := sc.Template
	return Strategy{
		Name:     sc.Name,
		Envelope: envelope,
		BuildURL: func(target string) string {
			if template == "" {
				return target
			}
			out := strings.ReplaceAll(template, "{target}", url.QueryEscape(target))
			out = strings.ReplaceAll(out, "{target_raw}", target)
			return out
		},
	}
}

// Config is the json5 configuration shape for a board client.
type Config struct {
	NotesURL     string `json:"notes_url"`
	UserNotesURL string `json:"user_notes_url"`
	NewUserURL   string `json:"new_user_url"`
	NewNoteURL   string `json:"new_note_url"`

	TimeoutSeconds     int              `json:"timeout_seconds"`
	Strategies         []StrategyConfig `json:"strategies"`
	OptimisticFallback bool             `json:"optimistic_fallback"`
	BypassCloudflare   bool             `json:"bypass_cloudflare"`
}

// ClientOptions lowers the configuration into client options. A missing
// strategy list means the default fallback order.
func (cfg Config) ClientOptions() ClientOptions {
	var strategies []Strategy
	if len(cfg.Strategies) > 0 {
		strategies = make([]Strategy, len(cfg.Strategies))
		for i, sc := range cfg.Strategies {
			strategies[i] = sc.strategy()
		}
	}
	return ClientOptions{
		NotesURL:           cfg.NotesURL,
		UserNotesURL:       cfg.UserNotesURL,
		NewUserURL:         cfg.NewUserURL,
		NewNoteURL:         cfg.NewNoteURL,
		Strategies:         strategies,
		Timeout:            time.Duration(cfg.TimeoutSeconds) * time.Second,
		OptimisticFallback: cfg.OptimisticFallback,
		BypassCloudflare:   cfg.BypassCloudflare,
	}
}

// DefaultConfig targets the public board endpoints.
func DefaultConfig() Config {
	return Config{
		NotesURL:     "http://hyeumine.com/notesposted.php",
		UserNotesURL: "http://hyeumine.com/mynotes.php",
		NewUserURL:   "http://hyeumine.com/newuser.php",
		NewNoteURL:   "http://hyeumine.com/newnote.php",
	}
}
