// Package api fetches blocks and transactions from a block explorer HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
)

const defaultTimeout = 30 * time.Second

// Client is an instrumented HTTP client for the block explorer API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    APIMetrics
}

// NewClient validates apiURL and constructs a Client. A nil httpClient gets a default timeout.
func NewClient(apiURL string, httpClient *http.Client, metrics APIMetrics) (*Client, error) {
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("api url missing host")
	}
	if metrics == nil {
		return nil, errors.New("api metrics is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(apiURL, "/"),
		httpClient: httpClient,
		metrics:    metrics,
	}, nil
}

// BlockURL returns the lookup URL for a block number.
func (c *Client) BlockURL(number uint64) string {
	return c.baseURL + "/block/" + strconv.FormatUint(number, 10)
}

// TransactionURL returns the lookup URL for a transaction id.
func (c *Client) TransactionURL(txID string) string {
	return c.baseURL + "/transaction/" + url.PathEscape(txID)
}

// FetchBlock retrieves and validates the block at number.
func (c *Client) FetchBlock(ctx context.Context, number uint64) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block", err, started)
	}()

	var raw json.RawMessage
	if err = c.FetchJSON(ctx, c.BlockURL(number), &raw); err != nil {
		return model.Block{}, err
	}
	block, err = DecodeBlock(raw)
	if err != nil {
		return model.Block{}, fmt.Errorf("decode block %d: %w", number, err)
	}
	if block.Number != number {
		err = &model.FieldError{
			Field:  "block_number",
			Reason: fmt.Sprintf("got %d, requested %d", block.Number, number),
		}
		return model.Block{}, fmt.Errorf("decode block %d: %w", number, err)
	}
	return block, nil
}

// FetchTransaction retrieves a transaction by id.
func (c *Client) FetchTransaction(ctx context.Context, txID string) (tx model.Transaction, err error) {
	if txID == "" {
		return nil, errors.New("transaction id is empty")
	}
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction", err, started)
	}()

	if err = c.FetchJSON(ctx, c.TransactionURL(txID), &tx); err != nil {
		return nil, err
	}
	if tx == nil {
		err = &model.FieldError{Field: "transaction", Reason: "response is null"}
		return nil, fmt.Errorf("decode transaction %s: %w", txID, err)
	}
	return tx, nil
}

// FetchJSON issues a GET to rawURL and decodes a 200 response body into out.
// Any other status is returned as *model.StatusError.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &model.StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	// A failed read is a transport failure; only undecodable bytes are a malformed record.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", rawURL, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w: %w", rawURL, model.ErrMalformedRecord, err)
	}
	return nil
}

func drainAndClose(rc io.ReadCloser) {
	// Drain to let the transport reuse the connection.
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
