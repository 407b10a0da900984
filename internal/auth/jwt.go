package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim. An access token is never
// accepted where a refresh token is expected and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, malformed subject or wrong type.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims issued by this service. Nome and Email are
// display claims carried only by access tokens minted at login.
type Claims struct {
	Nome      string `json:"nome,omitempty"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256-signed tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager with the given signing secret and
// token lifetimes.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken mints a short-lived access token for the user. Nome
// and email may be empty (tokens minted by the refresh operation carry
// only the subject).
func (m *Manager) IssueAccessToken(usuarioID int64, nome, email string) (string, error) {
	return m.issue(&Claims{
		Nome:      nome,
		Email:     email,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(usuarioID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTTL)),
		},
	})
}

// IssueRefreshToken mints a long-lived refresh token carrying only the
// user id.
func (m *Manager) IssueRefreshToken(usuarioID int64) (string, error) {
	return m.issue(&Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(usuarioID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.refreshTTL)),
		},
	})
}

func (m *Manager) issue(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates signature, expiry and token type, returning the
// user id from the subject claim.
func (m *Manager) VerifyToken(raw, wantType string) (int64, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.TokenType != wantType {
		return 0, ErrInvalidToken
	}

	usuarioID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return usuarioID, nil
}
