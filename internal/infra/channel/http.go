package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/commands"
)

// providerResponse is the body shape shared by the push and sms providers.
type providerResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// postJSON sends the payload and classifies the outcome: a 4xx other than
// 408/429 means the request itself is bad and retrying cannot help.
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, payload any) (*providerResponse, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", commands.Permanent(errs.Wrap(err, "failed to encode provider payload"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", commands.Permanent(errs.Wrap(err, "failed to build provider request"))
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", errs.Wrap(err, "provider request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to read provider response")
	}

	if resp.StatusCode >= 400 {
		err := errs.New(fmt.Sprintf("provider returned %d: %s", resp.StatusCode, string(raw)))
		if isPermanentStatus(resp.StatusCode) {
			return nil, string(raw), commands.Permanent(err)
		}
		return nil, string(raw), err
	}

	var pr providerResponse
	if uerr := json.Unmarshal(raw, &pr); uerr != nil {
		// Accept opaque success bodies.
		pr = providerResponse{Status: "accepted"}
	}
	return &pr, string(raw), nil
}

func isPermanentStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return false
	}
	return code >= 400 && code < 500
}
