// Package noteboard acquires the note board dataset from its HTML
// endpoint through an ordered list of transport strategies, extracts
// the content rows out of the page's nested table markup and exposes
// the per-user query and mutation endpoints of the same service.
package noteboard

import (
	"fmt"
	"net/url"
	"time"

	"noteboard-backend/lib/restyutil"
	"noteboard-backend/lib/textutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// Note is one content row of the board. SequentialID is assigned
// 1-based in extraction order and kept as a label through the
// newest-first sort, never re-derived.
type Note struct {
	SequentialID int    `json:"id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Note         string `json:"note"`
	Date         string `json:"date"`
}

// IdentityResolver derives a user identity key from a note's name
// fields. The board exposes no stable numeric id on its rows, so
// identity is a substitutable heuristic.
type IdentityResolver interface {
	Key(firstname, lastname string) string
}

// NameIdentity keys a user by normalized firstname+lastname. Two
// distinct users sharing a name collapse into one; the collision is
// inherent to the source and deliberately not papered over here.
type NameIdentity struct{}

func (NameIdentity) Key(firstname, lastname string) string {
	return fmt.Sprintf(
		"%s_%s",
		textutil.NormalizeName(firstname),
		textutil.NormalizeName(lastname),
	)
}

// User is a distinct board user derived from the note stream.
type User struct {
	Key       string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Provenance reports where an acquired dataset came from.
type Provenance struct {
	// Strategy is the name of the transport strategy that produced
	// the data; empty when the built-in fallback dataset was served.
	Strategy string
}

func (p Provenance) Live() bool {
	return p.Strategy != ""
}

type Client struct {
	NotesURL     *url.URL
	UserNotesURL string
	NewUserURL   string
	NewNoteURL   string
	Http         *resty.Client

	strategies          []Strategy
	userNotesStrategies []Strategy
	identity            IdentityResolver
	optimistic          bool
}

type ClientOptions struct {
	// NotesURL is the primary endpoint serving the full board as HTML.
	NotesURL string
	// UserNotesURL serves one user's notes as JSON, keyed by an `id`
	// query parameter.
	UserNotesURL string
	NewUserURL   string
	NewNoteURL   string

	// Strategies is the ordered transport fallback list. Nil means
	// DefaultStrategies().
	Strategies []Strategy
	// UserNotesStrategies is the fallback list for the per-user
	// endpoint. Nil means DefaultUserNotesStrategies().
	UserNotesStrategies []Strategy
	// Timeout applies per attempt, not across the strategy list.
	// Zero means 15 seconds.
	Timeout time.Duration
	// Identity defaults to NameIdentity.
	Identity IdentityResolver
	// OptimisticFallback makes CreateUser/CreateNote fabricate a local
	// success envelope when the endpoint is unreachable instead of
	// returning the transport error. Off unless explicitly requested.
	OptimisticFallback bool
	// BypassCloudflare wraps the transport so hostile intermediaries
	// in front of the board do not reject the client.
	BypassCloudflare bool

	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	notesURL, err := url.Parse(opts.NotesURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 15
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	strategies := opts.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	userNotesStrategies := opts.UserNotesStrategies
	if userNotesStrategies == nil {
		userNotesStrategies = DefaultUserNotesStrategies()
	}
	identity := opts.Identity
	if identity == nil {
		identity = NameIdentity{}
	}

	c := &Client{
		NotesURL:            notesURL,
		UserNotesURL:        opts.UserNotesURL,
		NewUserURL:          opts.NewUserURL,
		NewNoteURL:          opts.NewNoteURL,
		Http:                client,
		strategies:          strategies,
		userNotesStrategies: userNotesStrategies,
		identity:            identity,
		optimistic:          opts.OptimisticFallback,
	}
	return c, nil
}

// UniqueUsers extracts the distinct users appearing in a note
// sequence, in first-seen order.
func (c *Client) UniqueUsers(notes []Note) []User {
	seen := map[string]bool{}
	var users []User
	for _, n := range notes {
		key := c.identity.Key(n.Firstname, n.Lastname)
		if seen[key] {
			continue
		}
		seen[key] = true
		users = append(users, User{
			Key:       key,
			Firstname: n.Firstname,
			Lastname:  n.Lastname,
		})
	}
	return users
}
