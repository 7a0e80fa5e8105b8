package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	svc "restomenu/internal/menu/ports/services"
)

const (
	facebookProfileURL = "https://graph.facebook.com/me?fields=id,name,email"

	errCtxExchangingCode   = "exchanging authorization code"
	errCtxFetchingProfile  = "fetching facebook profile"
	errCtxDecodingProfile  = "decoding facebook profile"
	errMsgUnexpectedStatus = "unexpected profile response status"
)

// FacebookOAuth реализует интерфейс OAuthProvider поверх Facebook Login.
type FacebookOAuth struct {
	config *oauth2.Config
}

// NewFacebookOAuth создает новый экземпляр провайдера Facebook.
func NewFacebookOAuth(clientID, clientSecret, redirectURL string) svc.OAuthProvider {
	return &FacebookOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email"},
			Endpoint:     facebook.Endpoint,
		},
	}
}

// AuthCodeURL возвращает URL для перенаправления пользователя к Facebook.
func (p *FacebookOAuth) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange обменивает код авторизации на профиль пользователя Facebook.
func (p *FacebookOAuth) Exchange(ctx context.Context, code string) (*svc.ExternalProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxExchangingCode, err)
	}

	resp, err := p.config.Client(ctx, token).Get(facebookProfileURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", errMsgUnexpectedStatus, resp.Status)
	}

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodingProfile, err)
	}

	profile := &svc.ExternalProfile{
		ID:          payload.ID,
		DisplayName: payload.Name,
	}
	if payload.Email != "" {
		profile.Emails = []string{payload.Email}
	}
	return profile, nil
}
