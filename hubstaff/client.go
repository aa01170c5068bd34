package hubstaff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hbsreport/internal/timeutil"
)

const (
	signinPath        = "/v454/account/signin"
	institutionPath   = "/v454/institution"
	authTokenParam    = "auth_token"
	defaultTimeout    = 10 * time.Second
	defaultMaxPages   = 1000
	defaultRequestsPS = 5
)

// Client defines the Hubstaff API operations used by the report pipeline.
type Client interface {
	GetOrganizations(ctx context.Context) (OrganizationsResponse, error)
	GetOperationsByDay(ctx context.Context, organizationID int64, dateStart, dateStop time.Time) (DailyActivitiesResponse, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL  string
	AppToken string
	Email    string
	Password string

	// Timeout applies per request; there is deliberately no deadline across
	// a whole pagination run.
	Timeout time.Duration
	// MaxPages bounds a single pagination run. Zero selects the default.
	MaxPages int
	// RequestsPerSecond throttles outbound calls. Zero selects the default.
	RequestsPerSecond float64
	// RetryDelay is the fixed wait between retry attempts. Zero selects the
	// default of one second.
	RetryDelay time.Duration

	HTTPClient httpDoer
	Logger     *slog.Logger
}

// HTTPClient is an authenticated Hubstaff session. The bearer token is set
// once during construction and never mutated afterwards.
type HTTPClient struct {
	baseURL    string
	appToken   string
	authToken  string
	maxPages   int
	retryDelay time.Duration
	limiter    *rate.Limiter
	logger     *slog.Logger
	httpClient httpDoer
}

var _ Client = (*HTTPClient)(nil)

// Authenticate signs in with the configured credentials and returns a session
// holding the bearer token. A definitive rejection (non-2xx on sign-in) is an
// AuthError and is not retried; transient network failures during sign-in
// still go through the usual retry policy.
func Authenticate(ctx context.Context, cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}
	if strings.TrimSpace(cfg.AppToken) == "" {
		return nil, errors.New("application token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	requestsPerSecond := cfg.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPS
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &HTTPClient{
		baseURL:    baseURL,
		appToken:   strings.TrimSpace(cfg.AppToken),
		maxPages:   maxPages,
		retryDelay: retryDelay,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:     logger,
		httpClient: doer,
	}

	token, err := client.signin(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return nil, err
	}
	client.authToken = token
	return client, nil
}

// GetOrganizations retrieves all organizations visible to the session,
// following the pagination cursor across pages.
func (c *HTTPClient) GetOrganizations(ctx context.Context) (OrganizationsResponse, error) {
	result := OrganizationsResponse{Organizations: []Organization{}}

	err := paginate(ctx, c.maxPages, func(ctx context.Context, pageStartID *int64) (*Pagination, error) {
		var page organizationsPage
		if err := c.getPage(ctx, institutionPath, pageParams(nil, pageStartID), nil, &page); err != nil {
			return nil, err
		}
		result.Organizations = append(result.Organizations, page.organizations()...)
		return page.Pagination.cursor(), nil
	})
	if err != nil {
		return OrganizationsResponse{}, err
	}
	return result, nil
}

// GetOperationsByDay fetches all daily activity records for one organization
// and date range. Activity records accumulate in arrival order; users and
// projects are unioned by value across pages.
func (c *HTTPClient) GetOperationsByDay(ctx context.Context, organizationID int64, dateStart, dateStop time.Time) (DailyActivitiesResponse, error) {
	path := fmt.Sprintf("%s/%d/operations/by_day", institutionPath, organizationID)
	fixed := url.Values{"include": []string{"users,projects"}}
	headers := map[string]string{
		"DateStart": timeutil.FormatDay(dateStart),
		"DateStop":  timeutil.FormatDay(dateStop),
	}

	result := DailyActivitiesResponse{
		DailyActivities: []DailyActivity{},
		Users:           map[User]struct{}{},
		Projects:        map[Project]struct{}{},
	}

	err := paginate(ctx, c.maxPages, func(ctx context.Context, pageStartID *int64) (*Pagination, error) {
		var page dailyActivitiesPage
		if err := c.getPage(ctx, path, pageParams(fixed, pageStartID), headers, &page); err != nil {
			return nil, err
		}
		result.DailyActivities = append(result.DailyActivities, page.activities()...)
		for _, user := range page.users() {
			result.Users[user] = struct{}{}
		}
		for _, project := range page.projects() {
			result.Projects[project] = struct{}{}
		}
		return page.Pagination.cursor(), nil
	})
	if err != nil {
		return DailyActivitiesResponse{}, err
	}
	return result, nil
}

func (c *HTTPClient) signin(ctx context.Context, email, password string) (string, error) {
	var token string
	err := withRetry(ctx, c.retryDelay, func() error {
		payload := &bytes.Buffer{}
		form := multipart.NewWriter(payload)
		if err := form.WriteField("email", email); err != nil {
			return fmt.Errorf("encode sign-in form: %w", err)
		}
		if err := form.WriteField("password", password); err != nil {
			return fmt.Errorf("encode sign-in form: %w", err)
		}
		if err := form.Close(); err != nil {
			return fmt.Errorf("encode sign-in form: %w", err)
		}

		headers := map[string]string{"Content-Type": form.FormDataContentType()}
		data, err := c.do(ctx, http.MethodPost, signinPath, nil, headers, payload)
		if err != nil {
			var transportErr *TransportError
			if errors.As(err, &transportErr) && transportErr.Status != 0 {
				return &AuthError{Status: transportErr.Status, Err: transportErr}
			}
			return err
		}

		var page authTokenPage
		if err := decodePage(data, &page); err != nil {
			return err
		}
		token = *page.AuthToken
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// getPage performs one request+parse attempt through the retry policy.
func (c *HTTPClient) getPage(ctx context.Context, path string, params url.Values, headers map[string]string, out pageBody) error {
	return withRetry(ctx, c.retryDelay, func() error {
		data, err := c.do(ctx, http.MethodGet, path, params, headers, nil)
		if err != nil {
			return err
		}
		return decodePage(data, out)
	})
}

// do issues one HTTP call with the application token and Accept header always
// present, plus the stored bearer token as a query parameter once
// authenticated. Every call is logged before it is sent.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, headers map[string]string, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	c.logger.Info("api request",
		"method", method,
		"path", path,
		"params", params.Encode(),
		"headers", headers,
	)

	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if c.authToken != "" {
		query.Set(authTokenParam, c.authToken)
	}

	requestURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("AppToken", c.appToken)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Err:    errors.New(strings.TrimSpace(string(excerpt))),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	return data, nil
}
