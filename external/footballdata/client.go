package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

const (
	DefaultBaseURL = "http://api.football-data.org"

	VersionV1 = "v1"
	VersionV2 = "v2"

	authHeader      = "X-Auth-Token"
	maxResponseSize = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	APIVersion string
	Shape      Shape
	// Timeout applies only when HTTPClient is nil. Zero means no timeout.
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client fetches standings from football-data.org. Every call is a single
// round trip; there are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiVersion string
	shape      Shape
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	apiVersion := strings.ToLower(strings.TrimSpace(cfg.APIVersion))
	if apiVersion == "" {
		apiVersion = VersionV2
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiVersion: apiVersion,
		shape:      cfg.Shape,
		logger:     logger,
	}
}

// StandingsURL is the endpoint queried for competitionID.
func (c *Client) StandingsURL(competitionID int) string {
	if c.apiVersion == VersionV1 {
		return fmt.Sprintf("%s/v1/soccerseasons/%d/leagueTable", c.baseURL, competitionID)
	}
	return fmt.Sprintf("%s/%s/competitions/%d/standings", c.baseURL, c.apiVersion, competitionID)
}

// FetchStandings fetches and extracts the table of one competition.
func (c *Client) FetchStandings(ctx context.Context, competitionID int) (standing.Table, error) {
	raw, err := c.FetchRaw(ctx, competitionID)
	if err != nil {
		return standing.Table{}, err
	}

	table, err := Extract(raw, c.shape)
	if err != nil {
		return standing.Table{}, errors.Wrapf(err, "extract standings competition_id=%d", competitionID)
	}

	return table, nil
}

// FetchRaw performs the authenticated GET and returns the body. Connection
// failures and non-2xx responses are marked usecase.ErrTransport.
func (c *Client) FetchRaw(ctx context.Context, competitionID int) ([]byte, error) {
	if c.apiKey == "" {
		return nil, errors.Mark(errors.New("api key is required"), usecase.ErrConfig)
	}
	if competitionID <= 0 {
		return nil, errors.Wrap(usecase.ErrInvalidInput, "competition id must be greater than zero")
	}

	fullURL := c.StandingsURL(competitionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "build request"), usecase.ErrTransport)
	}
	req.Header.Set(authHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "send request competition_id=%d", competitionID), usecase.ErrTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read response body competition_id=%d", competitionID), usecase.ErrTransport)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "football-data request failed",
			"url", fullURL,
			"status", resp.StatusCode,
		)
		return nil, errors.Mark(
			errors.Newf("provider status=%d competition_id=%d body=%s", resp.StatusCode, competitionID, abbreviateBody(raw)),
			usecase.ErrTransport,
		)
	}

	c.logger.DebugContext(ctx, "football-data response received",
		"url", fullURL,
		"bytes", len(raw),
	)

	return raw, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
