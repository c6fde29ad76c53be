package service

import (
	"context"
	"time"
)

// MetaToken is a user access token returned by the OAuth code exchange.
type MetaToken struct {
	AccessToken string
	ExpiresAt   *time.Time
}

// MetaProfile identifies the connected account and its first managed page.
type MetaProfile struct {
	PlatformUserID string
	Name           string
	PageID         string
	PageToken      string // Page access token used to send messages, empty when no page is managed.
}

// SendMessageRequest is an outbound text message.
type SendMessageRequest struct {
	AccessToken string
	RecipientID string
	Text        string
	Tag         string
}

// SendMessageResult carries the ids assigned by the Graph API.
type SendMessageResult struct {
	RecipientID string
	MessageID   string
}

// MetaGraphClient abstracts the Meta Graph API endpoints Social Desk uses.
type MetaGraphClient interface {
	// AuthorizationURL builds the OAuth dialog URL for the given state.
	AuthorizationURL(state string) string

	// ExchangeCode trades an OAuth code for an access token.
	ExchangeCode(ctx context.Context, code string) (*MetaToken, error)

	// FetchProfile returns the platform user id behind a token.
	FetchProfile(ctx context.Context, accessToken string) (*MetaProfile, error)

	// SendMessage posts a text message. Failures are returned, never retried.
	SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResult, error)
}
