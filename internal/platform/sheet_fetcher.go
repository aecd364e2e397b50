package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Timeout constants
const (
	DefaultFetchTimeout = 8 * time.Second
)

// URL template for the Google Sheets gviz JSON export
const (
	SheetURLTemplate = "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json"
)

// Fetch error taxonomy. Startup treats all three as fatal for the loading
// sequence; the refresh loop treats them as recoverable.
var (
	// ErrFetchTimeout means the fetch exceeded its deadline
	ErrFetchTimeout = errors.New("przekroczono limit czasu pobierania")

	// ErrFetchFailed means a transport error or a non-2xx response
	ErrFetchFailed = errors.New("błąd pobierania danych")

	// ErrParseFailed means the payload JSON could not be extracted or parsed
	ErrParseFailed = errors.New("błąd przetwarzania danych")
)

// RawTable is the rows/columns table embedded in the gviz payload
type RawTable struct {
	Cols []RawColumn `json:"cols"`
	Rows []RawRow    `json:"rows"`
}

// RawColumn carries a column's metadata label
type RawColumn struct {
	Label string `json:"label"`
}

// RawRow is one row of cells; a cell may be absent (null)
type RawRow struct {
	Cells []*RawCell `json:"c"`
}

// RawCell holds a single cell value; gviz emits strings, numbers, or null
type RawCell struct {
	Value any `json:"v"`
}

// String returns the cell value as a trimmed string, empty for null cells
func (c *RawCell) String() string {
	if c == nil || c.Value == nil {
		return ""
	}
	switch v := c.Value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// gvizPayload is the envelope shape after JSONP unwrapping
type gvizPayload struct {
	Table *RawTable `json:"table"`
}

// SheetFetcher downloads and unwraps the spreadsheet export
type SheetFetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewSheetFetcher creates a fetcher for the given sheet ID
func NewSheetFetcher(sheetID string) *SheetFetcher {
	return &SheetFetcher{
		url:     fmt.Sprintf(SheetURLTemplate, sheetID),
		client:  &http.Client{},
		timeout: DefaultFetchTimeout,
	}
}

// NewSheetFetcherURL creates a fetcher for a fully specified export URL
func NewSheetFetcherURL(url string) *SheetFetcher {
	return &SheetFetcher{
		url:     url,
		client:  &http.Client{},
		timeout: DefaultFetchTimeout,
	}
}

// SetTimeout overrides the fetch deadline
func (f *SheetFetcher) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

// FetchTable downloads the gviz export and returns its embedded table.
// Deadline overruns surface as ErrFetchTimeout, transport errors and non-2xx
// statuses as ErrFetchFailed, and malformed payloads as ErrParseFailed.
func (f *SheetFetcher) FetchTable(ctx context.Context) (*RawTable, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (%s)", ErrFetchTimeout, f.timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (%s)", ErrFetchTimeout, f.timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return ParseEnvelope(body)
}

// ParseEnvelope extracts the JSON object embedded in the gviz JSONP-style
// wrapper (the substring between the first '{' and the last '}') and
// decodes the table from it.
func ParseEnvelope(body []byte) (*RawTable, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in payload", ErrParseFailed)
	}

	var payload gvizPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if payload.Table == nil {
		return nil, fmt.Errorf("%w: payload has no table", ErrParseFailed)
	}
	return payload.Table, nil
}
