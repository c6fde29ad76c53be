package meta

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGraphClient(t *testing.T, graphURL string) (*graphClient, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewIsolated("test")
	client := NewGraphClient(GraphClientParams{
		Config: &config.Config{Meta: &config.MetaConfig{
			AppID:           "1234567890",
			AppSecret:       "app-secret",
			RedirectURI:     "https://desk.example.com/oauth/meta/callback",
			Scopes:          "pages_show_list,pages_messaging",
			GraphAPIVersion: "v21.0",
			GraphBaseURL:    graphURL,
			RequestTimeout:  5 * time.Second,
		}},
		Metrics: m,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return client.(*graphClient), m
}

func TestGraphClient_AuthorizationURL(t *testing.T) {
	client, _ := createTestGraphClient(t, "")

	g := goldie.New(t)
	g.Assert(t, "authorization_url", []byte(client.AuthorizationURL("state-abc")))
}

func TestGraphClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21.0/oauth/access_token", r.URL.Path)
		assert.Equal(t, "code-1", r.URL.Query().Get("code"))
		assert.Equal(t, "app-secret", r.URL.Query().Get("client_secret"))
		_, _ = w.Write([]byte(`{"access_token":"user-token","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	client, m := createTestGraphClient(t, server.URL)
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	token, err := client.ExchangeCode(t.Context(), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "user-token", token.AccessToken)
	require.NotNil(t, token.ExpiresAt)
	assert.Equal(t, fixed.Add(time.Hour), *token.ExpiresAt)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GraphRequests.WithLabelValues("oauth_access_token", "200")), 0)
}

func TestGraphClient_ExchangeCodeGraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"This authorization code has expired.","type":"OAuthException","code":100,"fbtrace_id":"trace-1"}}`))
	}))
	defer server.Close()

	client, m := createTestGraphClient(t, server.URL)

	_, err := client.ExchangeCode(t.Context(), "expired")

	var graphErr *GraphError
	require.True(t, errors.As(err, &graphErr))
	assert.Equal(t, http.StatusBadRequest, graphErr.StatusCode)
	assert.Equal(t, 100, graphErr.Code)
	assert.Equal(t, "trace-1", graphErr.TraceID)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GraphRequests.WithLabelValues("oauth_access_token", "400")), 0)
}

func TestGraphClient_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21.0/me", r.URL.Path)
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{
			"id": "fb-user-1",
			"name": "Boutique Amel",
			"accounts": {"data": [
				{"id": "page-100", "name": "Amel Store", "access_token": "page-token"},
				{"id": "page-200", "name": "Second", "access_token": "other"}
			]}
		}`))
	}))
	defer server.Close()

	client, _ := createTestGraphClient(t, server.URL)

	profile, err := client.FetchProfile(t.Context(), "user-token")

	require.NoError(t, err)
	assert.Equal(t, &service.MetaProfile{
		PlatformUserID: "fb-user-1",
		Name:           "Boutique Amel",
		PageID:         "page-100",
		PageToken:      "page-token",
	}, profile)
}

func TestGraphClient_FetchProfileWithoutPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"fb-user-1","name":"Solo"}`))
	}))
	defer server.Close()

	client, _ := createTestGraphClient(t, server.URL)

	profile, err := client.FetchProfile(t.Context(), "user-token")

	require.NoError(t, err)
	assert.Empty(t, profile.PageID)
	assert.Empty(t, profile.PageToken)
}

func TestGraphClient_SendMessage(t *testing.T) {
	tests := []struct {
		name   string
		golden string
		req    service.SendMessageRequest
	}{
		{
			name:   "tagged message",
			golden: "send_message_tagged",
			req: service.SendMessageRequest{
				AccessToken: "page-token",
				RecipientID: "psid-42",
				Text:        "Votre commande est prête",
				Tag:         "HUMAN_AGENT",
			},
		},
		{
			name:   "standard response",
			golden: "send_message_response",
			req: service.SendMessageRequest{
				AccessToken: "page-token",
				RecipientID: "psid-42",
				Text:        "Merci !",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v21.0/me/messages", r.URL.Path)
				assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				body, _ = io.ReadAll(r.Body)
				_ = json.NewEncoder(w).Encode(map[string]string{"recipient_id": "psid-42", "message_id": "m_out_1"})
			}))
			defer server.Close()

			client, _ := createTestGraphClient(t, server.URL)

			result, err := client.SendMessage(t.Context(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, "m_out_1", result.MessageID)
			assert.Equal(t, "psid-42", result.RecipientID)

			g := goldie.New(t)
			g.Assert(t, tt.golden, body)
		})
	}
}

func TestGraphClient_SendMessageFailureIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := createTestGraphClient(t, server.URL)

	_, err := client.SendMessage(t.Context(), service.SendMessageRequest{AccessToken: "t", RecipientID: "r", Text: "x"})

	var graphErr *GraphError
	require.True(t, errors.As(err, &graphErr))
	assert.Equal(t, http.StatusInternalServerError, graphErr.StatusCode)
	assert.Equal(t, 1, calls)
}
