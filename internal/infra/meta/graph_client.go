// Package meta talks to the Meta Graph API and verifies webhook deliveries.
package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultGraphBaseURL  = "https://graph.facebook.com"
	defaultDialogBaseURL = "https://www.facebook.com"

	messagingTypeTag      = "MESSAGE_TAG"
	messagingTypeResponse = "RESPONSE"

	// Graph error bodies are small; anything past this is discarded.
	maxErrorBody = 64 << 10
)

// GraphError is a non-2xx answer from the Graph API.
type GraphError struct {
	StatusCode int
	Code       int
	Type       string
	Message    string
	TraceID    string
}

func (e *GraphError) Error() string {
	if e.Message == "" {
		return "graph api returned status " + strconv.Itoa(e.StatusCode)
	}

	return "graph api: " + e.Message + " (code " + strconv.Itoa(e.Code) + ")"
}

type graphClient struct {
	appID       string
	appSecret   string
	redirectURI string
	scopes      string
	graphBase   string
	dialogBase  string
	httpClient  *http.Client
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// GraphClientParams holds dependencies for the Graph client, injected by Fx
type GraphClientParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewGraphClient builds a client for the configured Graph API version.
func NewGraphClient(params GraphClientParams) service.MetaGraphClient {
	cfg := params.Config.Meta

	graphBase := strings.TrimRight(cfg.GraphBaseURL, "/")
	if graphBase == "" {
		graphBase = defaultGraphBaseURL
	}
	dialogBase := strings.TrimRight(cfg.DialogBaseURL, "/")
	if dialogBase == "" {
		dialogBase = defaultDialogBaseURL
	}

	return &graphClient{
		appID:       cfg.AppID,
		appSecret:   cfg.AppSecret,
		redirectURI: cfg.RedirectURI,
		scopes:      cfg.Scopes,
		graphBase:   graphBase + "/" + cfg.GraphAPIVersion,
		dialogBase:  dialogBase + "/" + cfg.GraphAPIVersion,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		metrics:     params.Metrics,
		logger:      params.Logger.With(slog.String("component", "meta_graph")),
		now:         time.Now,
	}
}

func (c *graphClient) AuthorizationURL(state string) string {
	query := url.Values{}
	query.Set("client_id", c.appID)
	query.Set("redirect_uri", c.redirectURI)
	query.Set("state", state)
	query.Set("response_type", "code")
	if c.scopes != "" {
		query.Set("scope", c.scopes)
	}

	return c.dialogBase + "/dialog/oauth?" + query.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *graphClient) ExchangeCode(ctx context.Context, code string) (*service.MetaToken, error) {
	query := url.Values{}
	query.Set("client_id", c.appID)
	query.Set("client_secret", c.appSecret)
	query.Set("redirect_uri", c.redirectURI)
	query.Set("code", code)

	var resp tokenResponse
	if err := c.do(ctx, "oauth_access_token", http.MethodGet, "/oauth/access_token", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("graph api returned an empty access token")
	}

	token := &service.MetaToken{AccessToken: resp.AccessToken}
	if resp.ExpiresIn > 0 {
		expiresAt := c.now().UTC().Add(time.Duration(resp.ExpiresIn) * time.Second)
		token.ExpiresAt = &expiresAt
	}

	return token, nil
}

type profileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Accounts struct {
		Data []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	} `json:"accounts"`
}

func (c *graphClient) FetchProfile(ctx context.Context, accessToken string) (*service.MetaProfile, error) {
	query := url.Values{}
	query.Set("fields", "id,name,accounts{id,name,access_token}")
	query.Set("access_token", accessToken)

	var resp profileResponse
	if err := c.do(ctx, "me", http.MethodGet, "/me", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, errors.New("graph api returned a profile without id")
	}

	profile := &service.MetaProfile{
		PlatformUserID: resp.ID,
		Name:           resp.Name,
	}
	if len(resp.Accounts.Data) > 0 {
		page := resp.Accounts.Data[0]
		profile.PageID = page.ID
		profile.PageToken = page.AccessToken
	}
	if len(resp.Accounts.Data) > 1 {
		c.logger.WarnContext(ctx, "Several pages are managed, connecting the first one",
			slog.String("platformUserID", resp.ID),
			slog.String("pageID", profile.PageID),
			slog.Int("pages", len(resp.Accounts.Data)),
		)
	}

	return profile, nil
}

type sendMessageBody struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
	MessagingType string `json:"messaging_type"`
	Tag           string `json:"tag,omitempty"`
}

type sendMessageResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

func (c *graphClient) SendMessage(ctx context.Context, req service.SendMessageRequest) (*service.SendMessageResult, error) {
	var body sendMessageBody
	body.Recipient.ID = req.RecipientID
	body.Message.Text = req.Text
	body.MessagingType = messagingTypeResponse
	if req.Tag != "" {
		body.MessagingType = messagingTypeTag
		body.Tag = req.Tag
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	query := url.Values{}
	query.Set("access_token", req.AccessToken)

	var resp sendMessageResponse
	if err := c.do(ctx, "me_messages", http.MethodPost, "/me/messages", query, payload, &resp); err != nil {
		return nil, err
	}

	return &service.SendMessageResult{
		RecipientID: resp.RecipientID,
		MessageID:   resp.MessageID,
	}, nil
}

type graphErrorBody struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

// do performs one request and decodes a 2xx JSON body into out.
func (c *graphClient) do(ctx context.Context, endpoint, method, path string, query url.Values, body []byte, out any) error {
	target := c.graphBase + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	c.observe(endpoint, resp, start)
	if err != nil {
		return errors.Wrapf(err, "graph api %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode graph api %s response", endpoint)
	}

	return nil
}

func (c *graphClient) decodeError(resp *http.Response) error {
	graphErr := &GraphError{StatusCode: resp.StatusCode}

	var body graphErrorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(raw, &body) == nil {
		graphErr.Code = body.Error.Code
		graphErr.Type = body.Error.Type
		graphErr.Message = body.Error.Message
		graphErr.TraceID = body.Error.FBTraceID
	}

	return errors.WithStack(graphErr)
}

func (c *graphClient) observe(endpoint string, resp *http.Response, start time.Time) {
	if c.metrics == nil {
		return
	}

	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.GraphRequests.WithLabelValues(endpoint, status).Inc()
	c.metrics.GraphLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
