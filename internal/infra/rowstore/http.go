package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/errs"
)

// httpGateway talks to the remote store's JSON batch API. It performs no
// retries of its own: the service treats a failed call as terminal for
// that request (retry policy, if any, belongs to the store client
// deployment, not here).
type httpGateway struct {
	baseURL    string
	apiKey     string
	documentID string
	client     *http.Client
}

func NewHTTPGateway(cfg config.RowStoreConfig) Gateway {
	return &httpGateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		documentID: cfg.DocumentID,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type valuesResponse struct {
	ValueRanges [][]Row `json:"valueRanges"`
}

func (g *httpGateway) Get(ctx context.Context, rng Range) ([]Row, error) {
	ranges, err := g.BatchGet(ctx, []Range{rng})
	if err != nil {
		return nil, err
	}
	return ranges[0], nil
}

func (g *httpGateway) BatchGet(ctx context.Context, ranges []Range) ([][]Row, error) {
	body := map[string]any{"ranges": ranges}

	var resp valuesResponse
	if err := g.post(ctx, "/values:batchGet", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.ValueRanges) != len(ranges) {
		return nil, errs.Newf("row store returned %d ranges, requested %d", len(resp.ValueRanges), len(ranges))
	}
	return resp.ValueRanges, nil
}

func (g *httpGateway) BatchUpdate(ctx context.Context, ops []Op) error {
	body := map[string]any{"ops": ops}
	return g.post(ctx, "/values:batchUpdate", body, nil)
}

func (g *httpGateway) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode row store request")
	}

	url := fmt.Sprintf("%s/documents/%s%s", g.baseURL, g.documentID, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build row store request")
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "row store request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("row store responded %d: %s", resp.StatusCode, string(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode row store response")
	}
	return nil
}
