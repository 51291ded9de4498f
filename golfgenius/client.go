package golfgenius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of an error response is kept on APIError
const maxErrorBody = 512

// Client represents a GolfGenius API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
	logger     zerolog.Logger
}

// NewClient creates a new GolfGenius client. It performs no network I/O.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: o.timeout},
		limiter:    newLimiter(o.requestDelay),
		observer:   o.observer,
		logger:     logger,
	}, nil
}

// newLimiter allows one request immediately and then one per delay
func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// doRequest performs a throttled GET. route is the low-cardinality endpoint
// template reported to the observer; endpoint is the concrete path.
func (c *Client) doRequest(ctx context.Context, route, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RequestError{Endpoint: endpoint, Err: err}
	}

	reqURL := c.baseURL + "/" + url.PathEscape(c.apiKey) + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Endpoint: endpoint, Err: stripURL(err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("params", params.Encode()).
		Msg("Making GolfGenius API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(route, 0, time.Since(start))
		return nil, &RequestError{Endpoint: endpoint, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.observe(route, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &RequestError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", stripURL(err))}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return body, nil
}

func (c *Client) observe(route string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveRequest(route, status, elapsed)
	}
}

// stripURL drops the request URL from net/http errors; it contains the API key
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// TestConnection verifies the API key by listing seasons
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.doRequest(ctx, "/seasons", "/seasons", nil)
	return err
}

// GetSeasons retrieves all seasons
func (c *Client) GetSeasons(ctx context.Context) ([]Season, error) {
	body, err := c.doRequest(ctx, "/seasons", "/seasons", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasons: %w", err)
	}

	seasons, err := decodeList[Season](body, "season")
	if err != nil {
		return nil, fmt.Errorf("failed to parse seasons: %w", err)
	}

	c.logger.Debug().Int("count", len(seasons)).Msg("Retrieved seasons from GolfGenius")
	return seasons, nil
}

// GetEvents retrieves the events of a season
func (c *Client) GetEvents(ctx context.Context, seasonID ID) ([]Event, error) {
	params := url.Values{}
	params.Set("season", seasonID.String())

	body, err := c.doRequest(ctx, "/events", "/events", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for season %s: %w", seasonID, err)
	}

	events, err := decodeList[Event](body, "event")
	if err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}

	c.logger.Debug().
		Str("season_id", seasonID.String()).
		Int("count", len(events)).
		Msg("Retrieved events from GolfGenius")
	return events, nil
}

// GetRounds retrieves the rounds of an event
func (c *Client) GetRounds(ctx context.Context, eventID ID) ([]Round, error) {
	endpoint := fmt.Sprintf("/events/%s/rounds", url.PathEscape(eventID.String()))

	body, err := c.doRequest(ctx, "/events/{event}/rounds", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds for event %s: %w", eventID, err)
	}

	rounds, err := decodeList[Round](body, "round")
	if err != nil {
		return nil, fmt.Errorf("failed to parse rounds: %w", err)
	}
	return rounds, nil
}

// GetTournaments retrieves the tournaments of an event round. Entries
// without an id are dropped.
func (c *Client) GetTournaments(ctx context.Context, eventID, roundID ID) ([]Tournament, error) {
	endpoint := fmt.Sprintf("/events/%s/rounds/%s/tournaments",
		url.PathEscape(eventID.String()), url.PathEscape(roundID.String()))

	body, err := c.doRequest(ctx, "/events/{event}/rounds/{round}/tournaments", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournaments for event %s round %s: %w", eventID, roundID, err)
	}

	items, err := decodeList[tournamentItem](body, "tournament")
	if err != nil {
		return nil, fmt.Errorf("failed to parse tournaments: %w", err)
	}

	tournaments := make([]Tournament, 0, len(items))
	for _, item := range items {
		t, ok := item.tournament()
		if !ok {
			c.logger.Debug().
				Str("event_id", eventID.String()).
				Str("round_id", roundID.String()).
				Msg("Skipping tournament without id")
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

// GetTournamentResults retrieves every individual result of a tournament.
// Records are returned as sent; validating names and scores is left to the caller.
func (c *Client) GetTournamentResults(ctx context.Context, eventID, roundID, tournamentID ID) ([]PlayerResult, error) {
	endpoint := fmt.Sprintf("/events/%s/rounds/%s/tournaments/%s.json",
		url.PathEscape(eventID.String()), url.PathEscape(roundID.String()), url.PathEscape(tournamentID.String()))

	body, err := c.doRequest(ctx, "/events/{event}/rounds/{round}/tournaments/{tournament}", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get results for tournament %s: %w", tournamentID, err)
	}

	items, err := unwrap(body, "event")
	if err != nil {
		return nil, fmt.Errorf("failed to parse results for tournament %s: %w", tournamentID, err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var event resultsEvent
	if err := json.Unmarshal(items[0], &event); err != nil {
		return nil, fmt.Errorf("failed to parse results for tournament %s: %w", tournamentID, err)
	}

	results := event.playerResults()
	c.logger.Debug().
		Str("tournament_id", tournamentID.String()).
		Int("count", len(results)).
		Msg("Retrieved tournament results from GolfGenius")
	return results, nil
}
