// Package apiclient is an HTTP client for the companion API.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/english-companion/internal/apierr"
	"github.com/at-ishikawa/english-companion/internal/lesson"
	"github.com/at-ishikawa/english-companion/internal/progress"
)

const DefaultMaxRetryAttempts = 2

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
	Details    []apierr.Detail
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("response error %d", e.StatusCode)
	}
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Details []apierr.Detail `json:"details"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

func (client *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := client.get(ctx, "/health", nil, &result); err != nil {
		return nil, fmt.Errorf("client.get(/health) > %w", err)
	}
	return &result, nil
}

func (client *Client) Lessons(ctx context.Context) ([]lesson.ListItem, error) {
	var result struct {
		Lessons []lesson.ListItem `json:"lessons"`
	}
	if err := client.get(ctx, "/api/lessons", nil, &result); err != nil {
		return nil, fmt.Errorf("client.get(/api/lessons) > %w", err)
	}
	return result.Lessons, nil
}

func (client *Client) Progress(ctx context.Context, userID int64) (*progress.Summary, error) {
	var result struct {
		Progress *progress.Summary `json:"progress"`
	}
	query := map[string]string{"userId": strconv.FormatInt(userID, 10)}
	if err := client.get(ctx, "/api/progress", query, &result); err != nil {
		return nil, fmt.Errorf("client.get(/api/progress) > %w", err)
	}
	if result.Progress == nil {
		return nil, errors.New("response has no progress")
	}
	return result.Progress, nil
}

// get retries transport failures and 5xx responses. 4xx responses are returned immediately.
func (client *Client) get(ctx context.Context, path string, query map[string]string, result interface{}) error {
	return retry.Do(
		func() error {
			err := client.doGet(ctx, path, query, result)
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(100*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func (client *Client) doGet(ctx context.Context, path string, query map[string]string, result interface{}) error {
	var failure errorBody
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		SetError(&failure).
		Get(path)
	if err != nil {
		return fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return &Error{StatusCode: res.StatusCode(), Message: failure.Message, Details: failure.Details}
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
