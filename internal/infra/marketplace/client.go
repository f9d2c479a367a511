package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"estate-booking/internal/pkg/authctx"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
)

const maxErrorBody = 64 << 10

// Observer receives one observation per logical call, retries included.
type Observer interface {
	ObserveRemote(operation, outcome string, d time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	retryMax   int
	backoff    time.Duration
	logger     *slog.Logger
	observer   Observer
}

func NewClient(cfg config.MarketplaceConfig, logger *slog.Logger, observer Observer) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryMax: cfg.RetryMax,
		backoff:  cfg.RetryBackoff,
		logger:   logger,
		observer: observer,
	}
}

type call struct {
	op         string
	method     string
	path       string
	body       any
	headers    map[string]string
	idempotent bool
}

type response struct {
	status int
	body   []byte
}

// do runs c with the retry policy. Only idempotent calls are retried, and only
// after network failures or 5xx responses.
func (c *Client) do(ctx context.Context, cl call) (*response, error) {
	start := time.Now()

	var payload []byte
	if cl.body != nil {
		var err error
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return nil, newClientError(KindDecode, cl.op, 0, "", err)
		}
	}

	attempts := 1
	if cl.idempotent {
		attempts += c.retryMax
	}

	var (
		resp *response
		err  error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if werr := c.wait(ctx, attempt); werr != nil {
				break
			}
			c.logger.Debug("Retrying marketplace call",
				slog.String("operation", cl.op),
				slog.Int("attempt", attempt+1))
		}
		resp, err = c.once(ctx, cl, payload)
		if err == nil {
			break
		}
		var ce ClientError
		if !errs.As(err, &ce) || !ce.Retryable() {
			break
		}
	}

	c.observe(cl.op, err, time.Since(start))
	if err != nil {
		logClientErr(c.logger, err)
		return nil, err
	}
	return resp, nil
}

func (c *Client) once(ctx context.Context, cl call, payload []byte) (*response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, newClientError(KindNetwork, cl.op, 0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := authctx.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}
	for k, v := range cl.headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newClientError(KindNetwork, cl.op, 0, "", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, newClientError(KindNetwork, cl.op, res.StatusCode, "", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return nil, newClientError(kindForStatus(res.StatusCode), cl.op, res.StatusCode, errorMessage(raw), nil)
	}
	return &response{status: res.StatusCode, body: raw}, nil
}

// wait sleeps before retry number attempt; the delay doubles on every retry.
func (c *Client) wait(ctx context.Context, attempt int) error {
	d := c.backoff << (attempt - 1)
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) observe(op string, err error, d time.Duration) {
	if c.observer == nil {
		return
	}
	outcome := "ok"
	var ce ClientError
	if err != nil {
		outcome = "error"
		if errs.As(err, &ce) {
			outcome = strings.ToLower(string(ce.Kind))
		}
	}
	c.observer.ObserveRemote(op, outcome, d)
}

// decode reads the payload, unwrapping a {"data": ...} envelope when present.
func decode(op string, r *response, target any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	raw := r.body
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return newClientError(KindDecode, op, r.status, "", err)
	}
	return nil
}

// errorMessage pulls a human message out of the error shapes the marketplace uses.
func errorMessage(body []byte) string {
	var e struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if len(e.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Error, &s); err == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
