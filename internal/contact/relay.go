package contact

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultEndpoint is the form-processing service the site posts to.
	DefaultEndpoint = "https://api.web3forms.com/submit"
	// DefaultTimeout bounds the single outbound attempt.
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 64 << 10
)

// Relay forwards submissions to a form-processing service that answers with
// {"success": bool, "message": string}.
type Relay struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
}

// RelayResponse is the body the form-processing service replies with.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewRelay creates a relay client. An empty endpoint falls back to
// DefaultEndpoint and a zero timeout to DefaultTimeout.
func NewRelay(endpoint, accessKey string, timeout time.Duration) (relay *Relay) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	relay = &Relay{
		endpoint:  endpoint,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return relay
}

// Form builds the form-encoded payload for a submission.
func (r *Relay) Form(sub Submission) url.Values {
	form := url.Values{}
	form.Set("access_key", r.accessKey)
	form.Set("name", sub.Name)
	form.Set("email", sub.Email)
	form.Set("subject", sub.Subject)
	form.Set("message", sub.Message)
	form.Set("botcheck", sub.Botcheck)
	return form
}

// Send posts the submission once. Transport failures, unreadable replies and
// success=false all come back as errors; there is no retry.
func (r *Relay) Send(ctx context.Context, sub Submission) (err error) {
	if r.accessKey == "" {
		err = ErrNotConfigured
		return err
	}

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(r.Form(sub).Encode()))
	if err != nil {
		err = errors.Wrap(err, "failed to create relay request")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	resp, err = r.httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "relay request failed")
		return err
	}
	defer resp.Body.Close()

	var body []byte
	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read relay response")
		return err
	}

	var result RelayResponse
	if jsonErr := json.Unmarshal(body, &result); jsonErr != nil {
		err = errors.Errorf("relay answered %d with unreadable body", resp.StatusCode)
		return err
	}

	if !result.Success {
		err = errors.Wrapf(ErrRejected, "relay answered %d: %s", resp.StatusCode, result.Message)
		return err
	}

	return err
}
