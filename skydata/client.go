package skydata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxResponseBody = 1 << 20 // 1 MB

// Client talks to the people-in-space and celestial body sources.
type Client struct {
	httpClient *http.Client
	peopleURL  string
	bodiesURL  string
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a client. bodiesURL is the collection URL; the body id is
// appended to it.
func NewClient(peopleURL, bodiesURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		peopleURL:  peopleURL,
		bodiesURL:  bodiesURL,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPeopleCount returns how many people are in space right now.
func (c *Client) FetchPeopleCount(ctx context.Context) (PeopleReport, error) {
	var resp peopleResponse
	if err := c.getJSON(ctx, c.peopleURL, &resp); err != nil {
		return PeopleReport{}, fmt.Errorf("fetch people: %w", err)
	}
	if resp.People == nil {
		return PeopleReport{}, ErrMalformedPeople
	}
	return PeopleReport{Count: len(resp.People), People: resp.People}, nil
}

// FetchBody looks up a single body.
func (c *Client) FetchBody(ctx context.Context, id string) (CelestialRecord, error) {
	var resp bodyResponse
	if err := c.getJSON(ctx, c.bodyURL(id), &resp); err != nil {
		return CelestialRecord{}, fmt.Errorf("fetch body %s: %w", id, err)
	}

	if resp.ID != "" && !strings.EqualFold(resp.ID, id) {
		return CelestialRecord{}, fmt.Errorf("%w: asked for %q, got %q", ErrBodyMismatch, id, resp.ID)
	}
	if resp.EnglishName == "" {
		return CelestialRecord{}, fmt.Errorf("%w: %s has no englishName", ErrMalformedBody, id)
	}
	if resp.AvgTemp == nil {
		return CelestialRecord{}, fmt.Errorf("%w: %s has no avgTemp", ErrMalformedBody, id)
	}
	return CelestialRecord{ID: id, EnglishName: resp.EnglishName, AvgTemp: *resp.AvgTemp}, nil
}

// FetchCelestialRecords looks up every id concurrently. Either all lookups
// succeed and the records come back in ids order, or the first error is
// returned and no records are.
func (c *Client) FetchCelestialRecords(ctx context.Context, ids []string) ([]CelestialRecord, error) {
	records := make([]CelestialRecord, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			rec, err := c.FetchBody(ctx, id)
			if err != nil {
				c.log.Debug("body lookup failed", zap.String("body", id), zap.Error(err))
				return err
			}
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) bodyURL(id string) string {
	return strings.TrimSuffix(c.bodiesURL, "/") + "/" + url.PathEscape(id)
}

func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: target, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}
