package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// UserProfile is the identity the provider vouches for
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	Profile   UserProfile `json:"profile"`
	Provider  string      `json:"provider"`
	ExpiresAt time.Time   `json:"expires_at"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

// AuthService exchanges provider credentials for application JWTs and
// validates them on each request. It is the only identity boundary; the rest
// of the application sees just the stable user id from the claims.
type AuthService struct {
	config        *AuthConfig
	httpClient    *http.Client
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
}

// TokenResponse is returned after a successful code exchange or refresh
type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}

	return &AuthService{
		config:        config,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		refreshTokens: make(map[string]*RefreshTokenData),
	}, nil
}

// oauth2Config builds the oauth2 configuration for a provider
func (s *AuthService) oauth2Config(provider string) (*oauth2.Config, *ProviderConfig, error) {
	providerConfig, err := s.config.GetProvider(provider)
	if err != nil {
		return nil, nil, apperrors.ErrUnknownProvider
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/callback", s.config.RedirectURL, provider)
	return &oauth2.Config{
		ClientID:     providerConfig.ClientID,
		ClientSecret: providerConfig.ClientSecret,
		RedirectURL:  callbackURL,
		Scopes:       providerConfig.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  providerConfig.AuthURL,
			TokenURL: providerConfig.TokenURL,
		},
	}, providerConfig, nil
}

// GetAuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	cfg, _, err := s.oauth2Config(provider)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback exchanges the authorization code, fetches the user profile
// and issues application tokens.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*TokenResponse, error) {
	cfg, providerConfig, err := s.oauth2Config(provider)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := s.fetchUserProfile(ctx, providerConfig, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		Profile:   *profile,
		Provider:  provider,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: refreshToken,
		Profile:      *profile,
	}, nil
}

// RefreshToken issues a new JWT from a previously issued refresh token
func (s *AuthService) RefreshToken(refreshToken string) (*TokenResponse, error) {
	s.tokenMutex.RLock()
	data, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("invalid refresh token")
	}
	if time.Now().After(data.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, fmt.Errorf("refresh token has expired")
	}

	jwtToken, err := s.GenerateJWT(&data.Profile, data.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &TokenResponse{
		AccessToken: jwtToken,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Profile:     data.Profile,
	}, nil
}

// RevokeRefreshToken drops a refresh token, e.g. on logout
func (s *AuthService) RevokeRefreshToken(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// fetchUserProfile loads the identity from the provider's userinfo endpoint
func (s *AuthService) fetchUserProfile(ctx context.Context, provider *ProviderConfig, accessToken string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	profile := &UserProfile{
		ID:    firstString(raw, "sub", "id", "user_id"),
		Name:  firstString(raw, "name", "display_name", "login"),
		Email: firstString(raw, "email"),
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo response carries no user identifier")
	}
	return profile, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(profile *UserProfile, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   profile.ID,
		Name:     profile.Name,
		Email:    profile.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "team-rule-tracker",
			Subject:   profile.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

func (s *AuthService) generateRefreshToken() (string, error) {
	return s.generateRandomString(64)
}

func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes)[:length], nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := m[key]; ok {
			switch v := value.(type) {
			case string:
				if v != "" {
					return v
				}
			case float64:
				return fmt.Sprintf("%.0f", v)
			}
		}
	}
	return ""
}
