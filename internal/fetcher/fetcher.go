// Package fetcher retrieves the portal's attendance page for an employee.
// The portal sits behind no API, so requests go through third-party relays
// tried in sequence; a parse failure counts against the relay that served it.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tanabodee/attendly/internal/constants"
	apperrors "github.com/tanabodee/attendly/internal/errors"
	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/models"
	"github.com/tanabodee/attendly/internal/scraper"
)

type Fetcher struct {
	client     *http.Client
	endpoint   string
	strategies []Strategy
}

// New builds a fetcher for the given portal endpoint. With no strategies the
// default relay chain is used.
func New(endpoint string, strategies ...Strategy) *Fetcher {
	if len(strategies) == 0 {
		strategies = DefaultStrategies("")
	}
	return &Fetcher{
		client:     &http.Client{},
		endpoint:   endpoint,
		strategies: strategies,
	}
}

// Fetch returns the parsed attendance records for an employee number, trying
// each relay in order. Every relay exhausted yields a FetchError; the
// per-relay causes are attached for the log but the message stays the
// user-facing connectivity failure. The caller owns persisting the result.
func (f *Fetcher) Fetch(ctx context.Context, empID string) ([]models.AttendanceRecord, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return nil, &apperrors.ValidationError{Field: "employee number", Reason: "must not be empty"}
	}

	target := f.endpoint + "?emp_no=" + url.QueryEscape(empID)

	var attempts []error
	for _, s := range f.strategies {
		records, err := f.fetchOne(ctx, s.URL(target))
		if err != nil {
			logger.Warn("relay attempt failed", "relay", s.Name(), "error", err)
			attempts = append(attempts, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		logger.Debug("fetched attendance page", "relay", s.Name(), "records", len(records))
		return records, nil
	}

	return nil, &apperrors.FetchError{Attempts: attempts}
}

func (f *Fetcher) fetchOne(ctx context.Context, rawURL string) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http error: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return scraper.Parse(string(body))
}
