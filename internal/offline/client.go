package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"warung-pos/internal/domain"
)

// HTTPSubmitter posts queued batches to the POS server's sync endpoint.
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPSubmitter) SubmitBatch(ctx context.Context, orders []domain.OrderPayload) (*domain.SyncResponse, error) {
	payload, err := json.Marshal(domain.SyncRequest{Orders: orders})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/orders/sync", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync endpoint returned %d", resp.StatusCode)
	}

	var syncResp domain.SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&syncResp); err != nil {
		return nil, err
	}
	return &syncResp, nil
}

// Ping reports whether the server is reachable; the sync agent uses it to
// drive the queue's online state.
func (s *HTTPSubmitter) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
