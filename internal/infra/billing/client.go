package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
)

const sessionsPath = "/v1/checkout/sessions"

// Client creates hosted checkout sessions on the billing provider. The
// provider speaks form-encoded requests and JSON responses.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(cfg config.BillingConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
	}
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateSession(ctx context.Context, in commands.CheckoutSessionInput) (*commands.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", in.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(in.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", "Restaurant order")
	form.Set("line_items[0][quantity]", "1")
	form.Set("client_reference_id", in.OrderID.String())
	for key, value := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build checkout request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "checkout request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read checkout response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.New(fmt.Sprintf("checkout API %d: %s", resp.StatusCode, apiErr.Error.Message))
		}
		return nil, errs.New(fmt.Sprintf("checkout API returned status %d", resp.StatusCode))
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout response")
	}

	return &commands.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}
