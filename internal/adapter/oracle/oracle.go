package oracle

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

	"token-vault/internal/core/domain"
	"token-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const pricePath = "/v1/prices/"

// Options parameterise the price-feed client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// MaxStaleness is how old an observation may be before it is refused.
	MaxStaleness time.Duration
	UserAgent    string
}

// Client implements ports.PriceOracle against an HTTP price feed.
// Every call is a fresh read; there is no caching layer in between, so
// two reads of the same reference may legitimately differ.
type Client struct {
	opts    Options
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// New constructs a price-feed client.
func New(opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		opts:    opts,
		logger:  logger.With().Str("component", "price_oracle").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

type priceResponse struct {
	Ref        string    `json:"ref"`
	Price      string    `json:"price"`
	ObservedAt time.Time `json:"observed_at"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// LatestPrice reads the current price of a payment asset in token units.
func (c *Client) LatestPrice(ctx context.Context, oracleRef string) (domain.RateSnapshot, error) {
	if c.baseURL == "" {
		return domain.RateSnapshot{}, errors.New("oracle base url not configured")
	}
	if oracleRef == "" {
		return domain.RateSnapshot{}, errors.New("oracle reference is required")
	}

	endpoint := c.baseURL + pricePath + url.PathEscape(oracleRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(c.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("oracle request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("oracle response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.RateSnapshot{}, parseHTTPError(resp.StatusCode, payload)
	}

	var pr priceResponse
	if err := json.Unmarshal(payload, &pr); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("decode oracle payload: %w", err)
	}

	price, err := decimal.NewFromString(pr.Price)
	if err != nil {
		return domain.RateSnapshot{}, apperror.ErrInvalidPrice(oracleRef)
	}
	if !price.IsPositive() {
		return domain.RateSnapshot{}, apperror.ErrInvalidPrice(oracleRef)
	}

	if c.opts.MaxStaleness > 0 {
		age := time.Since(pr.ObservedAt)
		if pr.ObservedAt.IsZero() || age > c.opts.MaxStaleness {
			c.logger.Warn().
				Str("ref", oracleRef).
				Time("observed_at", pr.ObservedAt).
				Dur("age", age).
				Msg("oracle observation too old")
			return domain.RateSnapshot{}, apperror.ErrStalePrice(oracleRef)
		}
	}

	return domain.RateSnapshot{Price: price, ObservedAt: pr.ObservedAt}, nil
}

func parseHTTPError(status int, payload []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil {
		if apiErr.Message != "" {
			return fmt.Errorf("oracle error (%d): %s", status, apiErr.Message)
		}
		if apiErr.Error != "" {
			return fmt.Errorf("oracle error (%d): %s", status, apiErr.Error)
		}
	}
	if len(payload) > 0 {
		return fmt.Errorf("oracle error (%d): %s", status, strings.TrimSpace(string(payload)))
	}
	return fmt.Errorf("oracle error (%d)", status)
}
