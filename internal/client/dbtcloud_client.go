package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/giantswarm/dbterra/internal/jobs"
	dbtstrings "github.com/giantswarm/dbterra/pkg/strings"
)

const (
	// DefaultHTTPTimeout is the default timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second

	// tokenType is the authorization scheme dbt Cloud service tokens use.
	tokenType = "Token"

	requestIDHeader = "X-Request-Id"
)

// status is the envelope status block of every dbt Cloud v2 response.
type status struct {
	Code             int64  `json:"code"`
	IsSuccess        bool   `json:"is_success"`
	UserMessage      string `json:"user_message"`
	DeveloperMessage string `json:"developer_message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Status status          `json:"status"`
}

// DBTCloudClient is a JobStore backed by the dbt Cloud v2 API.
type DBTCloudClient struct {
	baseURL   string
	accountID int64
	token     string
	userAgent string

	timeout   time.Duration
	transport http.RoundTripper
	logger    *slog.Logger

	httpClient *http.Client
}

// Option configures a DBTCloudClient.
type Option func(*DBTCloudClient)

// WithBaseURL sets the dbt Cloud host, for example https://emea.dbt.com.
func WithBaseURL(baseURL string) Option {
	return func(c *DBTCloudClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTransport sets the round tripper underneath the token transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *DBTCloudClient) {
		c.transport = rt
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *DBTCloudClient) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *DBTCloudClient) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *DBTCloudClient) {
		c.logger = logger
	}
}

// NewDBTCloudClient creates a client for the jobs of accountID, authenticating
// with a dbt Cloud service token.
func NewDBTCloudClient(accountID int64, token string, opts ...Option) *DBTCloudClient {
	c := &DBTCloudClient{
		baseURL:   "https://cloud.getdbt.com",
		accountID: accountID,
		token:     token,
		userAgent: "dbterra",
		timeout:   DefaultHTTPTimeout,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: c.token,
				TokenType:   tokenType,
			}),
			Base: c.transport,
		},
	}

	return c
}

// List fetches all jobs of the account and keeps those of projectID.
func (c *DBTCloudClient) List(ctx context.Context, projectID int64) ([]jobs.Job, error) {
	var all []jobs.Job
	if err := c.do(ctx, http.MethodGet, c.jobsURL(), nil, &all); err != nil {
		return nil, err
	}

	filtered := make([]jobs.Job, 0, len(all))
	for _, job := range all {
		if job.ProjectID == projectID {
			filtered = append(filtered, job)
		}
	}

	c.logger.Debug("Listed dbt Cloud jobs",
		"project_id", projectID,
		"account_jobs", len(all),
		"project_jobs", len(filtered))
	return filtered, nil
}

// Create posts a new job definition.
func (c *DBTCloudClient) Create(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	var created jobs.Job
	if err := c.do(ctx, http.MethodPost, c.jobsURL(), job, &created); err != nil {
		return jobs.Job{}, err
	}
	return created, nil
}

// Update posts job to its detail endpoint. dbt Cloud v2 uses POST, not PUT,
// for job updates.
func (c *DBTCloudClient) Update(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	id, ok := job.Identifier()
	if !ok {
		return jobs.Job{}, errMissingID(job)
	}

	var updated jobs.Job
	url := fmt.Sprintf("%s%d/", c.jobsURL(), id)
	if err := c.do(ctx, http.MethodPost, url, job, &updated); err != nil {
		return jobs.Job{}, err
	}
	return updated, nil
}

func (c *DBTCloudClient) jobsURL() string {
	return fmt.Sprintf("%s/api/v2/accounts/%d/jobs/", c.baseURL, c.accountID)
}

func (c *DBTCloudClient) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("dbt Cloud request", "method", method, "url", url, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{
				StatusCode:  resp.StatusCode,
				UserMessage: dbtstrings.SingleLine(string(raw), dbtstrings.ErrorBodyMaxLen),
			}
		}
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Status.IsSuccess {
		c.logger.Debug("dbt Cloud request failed",
			"request_id", requestID,
			"status", resp.StatusCode,
			"code", env.Status.Code)
		return &APIError{
			StatusCode:       resp.StatusCode,
			Code:             env.Status.Code,
			UserMessage:      env.Status.UserMessage,
			DeveloperMessage: env.Status.DeveloperMessage,
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}
