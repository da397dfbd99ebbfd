package bank

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"francoggm/payment-gateway/internal/models"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var (
	ErrUnavailable        = errors.New("acquiring bank unavailable")
	ErrUnparsableResponse = errors.New("unparsable acquiring bank response")
)

type authorizationResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}

type Client struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	logger  *zap.Logger
}

func NewClient(url string, timeout time.Duration, maxConns int, logger *zap.Logger) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		client: &fasthttp.Client{
			Name:            "payment-gateway",
			MaxConnsPerHost: maxConns,
		},
		logger: logger.Named("bank"),
	}
}

// Authorize sends a single authorization request to the bank.
// A non 2xx answer is a decline and yields models.Unreferenced.
func (c *Client) Authorize(ctx context.Context, authReq models.AuthorizationRequest) (models.AuthorizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	payload, err := sonic.Marshal(authReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authorization request: %w", err)
	}

	req.SetRequestURI(c.url + "/payments")
	req.Header.SetMethod(http.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	if err := c.client.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	statusCode := resp.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		c.logger.Info("bank declined request", zap.Int("status_code", statusCode))
		return models.Unreferenced{}, nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnparsableResponse)
	}

	var parsed *authorizationResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableResponse, err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("%w: null body", ErrUnparsableResponse)
	}

	if parsed.AuthorizationCode == nil || *parsed.AuthorizationCode == "" {
		return models.Unreferenced{}, nil
	}

	return models.Referenced{
		Code:       *parsed.AuthorizationCode,
		Authorized: parsed.Authorized,
	}, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}

	return deadline
}

// FormatExpiry renders the bank's MM/YYYY expiry date.
func FormatExpiry(month, year int) string {
	return fmt.Sprintf("%02d/%04d", month, year)
}
