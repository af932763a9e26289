package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medequip-backend/internal/model"
)

// Raw is one per-device prediction exactly as the model produced it. The
// model's output fields are not part of our contract, so we keep them as a
// generic map and only reattach identity later.
type Raw map[string]interface{}

// Client calls the hosted prediction service. The remote interface takes
// exactly one batched request: a JSON body whose "data" field holds the whole
// batch as a single JSON-encoded string. One Client is built at startup and
// shared by all in-flight requests.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	// The remote call is synchronous inside a user-facing request, so it
	// always runs under a bounded deadline.
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Predict submits the batch and returns one Raw per input, in the model's
// output order, plus any extra top-level response fields (duration etc.) as
// pass-through metadata.
func (c *Client) Predict(ctx context.Context, batch []model.ModelInput) ([]Raw, map[string]interface{}, error) {
	// 1. Serialize the whole batch into the single string field the remote
	// interface accepts.
	encoded, err := json.Marshal(batch)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding model input batch: %w", err)
	}

	body, err := json.Marshal(map[string]interface{}{
		"data": []string{string(encoded)},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("building prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// 2. One remote call for the whole batch.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: status %d", ErrModelUnavailable, resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrModelResponseMalformed, err)
	}

	// 3. The response's data field holds a JSON-encoded string that itself
	// contains the array of per-device predictions. Decode the nesting
	// explicitly instead of trusting it.
	dataField, ok := payload["data"].([]interface{})
	if !ok || len(dataField) == 0 {
		return nil, nil, fmt.Errorf("%w: missing data field", ErrModelResponseMalformed)
	}
	nested, ok := dataField[0].(string)
	if !ok {
		return nil, nil, fmt.Errorf("%w: data[0] is not an encoded string", ErrModelResponseMalformed)
	}

	var raws []Raw
	if err := json.Unmarshal([]byte(nested), &raws); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrModelResponseMalformed, err)
	}

	if len(raws) != len(batch) {
		return nil, nil, fmt.Errorf("%w: sent %d devices, got %d predictions",
			ErrModelResponseMalformed, len(batch), len(raws))
	}

	// 4. Everything except data is metadata the caller may pass through.
	delete(payload, "data")
	return raws, payload, nil
}
