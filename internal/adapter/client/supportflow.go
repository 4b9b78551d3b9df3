package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"supportflow/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
)

// SupportFlowClient talks to a running SupportFlow server. It is used by the
// CLI and by the ticket tracker.
type SupportFlowClient struct {
	baseURL string
	timeout time.Duration
}

func NewSupportFlowClient(baseURL string, timeout time.Duration) *SupportFlowClient {
	return &SupportFlowClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *SupportFlowClient) Health(ctx context.Context) (*entity.HealthStatus, error) {
	var out entity.HealthStatus
	if err := c.do(ctx, fiber.Get, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SupportFlowClient) Chat(ctx context.Context, req entity.SupportRequest) (*entity.SupportResponse, error) {
	var out entity.SupportResponse
	if err := c.do(ctx, fiber.Post, "/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SupportFlowClient) Analyze(ctx context.Context, message string) (*entity.SentimentResult, error) {
	var out entity.SentimentResult
	if err := c.do(ctx, fiber.Post, "/analyze", entity.AnalyzeRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StatusError is returned for any non-2xx answer from the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("supportflow returned status %d: %s", e.Code, e.Body)
}

type agentResult struct {
	code int
	body []byte
	errs []error
}

// do sends one request and decodes the JSON answer into out. fiber.Agent
// cannot be interrupted, so on cancellation do returns ctx.Err() at once and
// the in-flight request finishes in the background, bounded by its timeout.
func (c *SupportFlowClient) do(ctx context.Context, method func(string) *fiber.Agent, path string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout == 0 || left < timeout {
			timeout = left
		}
	}

	a := method(c.baseURL + path)
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if body != nil {
		a.ContentType(fiber.MIMEApplicationJSON)
		a.Body(body)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("build request: %w", err)
	}

	done := make(chan agentResult, 1)
	go func() {
		code, respBody, errs := a.Bytes()
		done <- agentResult{code: code, body: respBody, errs: errs}
	}()

	var res agentResult
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-done:
	}

	if len(res.errs) > 0 {
		return fmt.Errorf("supportflow request failed: %w", errors.Join(res.errs...))
	}
	if res.code < 200 || res.code >= 300 {
		return &StatusError{Code: res.code, Body: string(res.body)}
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
