// Package openei implements the client for the OpenEI USURDB utility
// rate API.
package openei

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/solarcrm/ratesync/internal/config"
	"github.com/solarcrm/ratesync/internal/models"
)

var (
	// ErrRequest covers transport failures and non-200 responses.
	ErrRequest = errors.New("rate API request failed")
	// ErrDecode covers malformed response bodies.
	ErrDecode = errors.New("rate API returned malformed response")
)

// Client queries the rate API with bounded retries. Pacing between
// queries is the caller's responsibility, so that direct-name lookups
// observe the same cooldown as geographic queries.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	retries      int
	timeout      time.Duration
	radius       int
	regionLimit  int
	utilityLimit int
	companyLimit int
	cache        *lru.Cache
	sleep        func(time.Duration)
	logger       *logrus.Logger
}

// NewClient builds a Client from config. The retry sleep is injectable
// through SetSleep for tests.
func NewClient(cfg config.APIConfig, apiKey string, logger *logrus.Logger) (*Client, error) {
	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       apiKey,
		httpClient:   http.DefaultClient,
		retries:      cfg.Retries,
		timeout:      cfg.Timeout(),
		radius:       cfg.Radius,
		regionLimit:  cfg.RegionLimit,
		utilityLimit: cfg.UtilityLimit,
		companyLimit: cfg.CompanyLimit,
		cache:        cache,
		sleep:        time.Sleep,
		logger:       logger,
	}, nil
}

// SetSleep replaces the between-attempt sleep function.
func (c *Client) SetSleep(sleep func(time.Duration)) {
	c.sleep = sleep
}

// QueryRegion fetches approved default residential rates around a
// geographic point.
func (c *Client) QueryRegion(ctx context.Context, lat, lon float64) ([]models.RawRateItem, error) {
	params := url.Values{}
	params.Set("sector", "Residential")
	params.Set("approved", "true")
	params.Set("is_default", "true")
	params.Set("country", "USA")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(c.radius))
	params.Set("co_limit", strconv.Itoa(c.companyLimit))
	params.Set("detail", "full")
	params.Set("limit", strconv.Itoa(c.regionLimit))

	return c.get(ctx, params)
}

// QueryUtility fetches the most recent approved residential rates for a
// utility by name. Responses are cached per name: multi-state utilities
// come up in several states' backfill passes but never need a second
// request.
func (c *Client) QueryUtility(ctx context.Context, name string) ([]models.RawRateItem, error) {
	if cached, ok := c.cache.Get(name); ok {
		return cached.([]models.RawRateItem), nil
	}

	params := url.Values{}
	params.Set("ratesforutility", name)
	params.Set("sector", "Residential")
	params.Set("approved", "true")
	params.Set("detail", "full")
	params.Set("limit", strconv.Itoa(c.utilityLimit))
	params.Set("orderby", "startdate")
	params.Set("direction", "desc")

	items, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	c.cache.Add(name, items)
	return items, nil
}

// get runs one query with up to c.retries attempts, sleeping
// attempt-index seconds between them. Transport errors, bad statuses,
// and decode failures all count as transient.
func (c *Client) get(ctx context.Context, params url.Values) ([]models.RawRateItem, error) {
	params.Set("api_key", c.apiKey)
	params.Set("version", "8")
	params.Set("format", "json")
	queryURL := c.baseURL + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		items, err := c.fetch(ctx, queryURL)
		if err == nil {
			return items, nil
		}
		lastErr = err

		if attempt < c.retries {
			c.logger.WithFields(logrus.Fields{
				"attempt": attempt,
				"retries": c.retries,
			}).WithError(err).Warn("rate API query failed, retrying")
			c.sleep(time.Duration(attempt) * time.Second)
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.retries, lastErr)
}

func (c *Client) fetch(ctx context.Context, queryURL string) ([]models.RawRateItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: got %d", ErrRequest, resp.StatusCode)
	}

	var envelope models.RateEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return envelope.Items, nil
}
