package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/de-tools/pnl-dashboard/pkg/models/domain"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint    = "https://dev-api2.profasee.com/reports/test-data"
	DefaultResultsPath = "payload.results"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrMalformedPayload = errors.New("malformed report payload")
)

// ReportClient reads daily financial records from the reporting endpoint.
type ReportClient interface {
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)
}

type Settings struct {
	URL         string
	ResultsPath string        // gjson path of the record list inside the envelope
	Timeout     time.Duration // zero means no timeout
	HTTPClient  *http.Client
}

type reportClient struct {
	url         string
	resultsPath string
	timeout     time.Duration
	httpClient  *http.Client
}

func NewReportClient(settings Settings) (ReportClient, error) {
	if settings.URL == "" {
		return nil, fmt.Errorf("report endpoint url is empty")
	}
	if settings.ResultsPath == "" {
		settings.ResultsPath = DefaultResultsPath
	}
	if settings.HTTPClient == nil {
		settings.HTTPClient = cleanhttp.DefaultPooledClient()
	}

	return &reportClient{
		url:         settings.URL,
		resultsPath: settings.ResultsPath,
		timeout:     settings.Timeout,
		httpClient:  settings.HTTPClient,
	}, nil
}

// FetchRecords issues a single GET with no parameters and no retry.
func (c *reportClient) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %w: %d", c.url, ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return parseRecords(body, c.resultsPath)
}

func parseRecords(body []byte, path string) ([]domain.RawRecord, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid json", ErrMalformedPayload)
	}

	results := gjson.GetBytes(body, path)
	if !results.IsArray() {
		return nil, fmt.Errorf("%w: %q is not a list", ErrMalformedPayload, path)
	}

	entries := results.Array()
	records := make([]domain.RawRecord, 0, len(entries))
	for i, entry := range entries {
		if !entry.IsObject() {
			return nil, fmt.Errorf("%w: result %d is not an object", ErrMalformedPayload, i)
		}
		records = append(records, domain.RawRecord{
			Date:    entry.Get("date"),
			Revenue: entry.Get("revenue"),
			COGS:    entry.Get("cogs"),
			AdsCost: entry.Get("ads_cost"),
		})
	}
	return records, nil
}
