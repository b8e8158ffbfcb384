package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates signed tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID, email, role string) (string, error)
	GenerateRefreshToken(userID, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

// CurrentUser is the authenticated principal attached to the request
// context by the middleware.
type CurrentUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ctxKey string

const contextUserKey ctxKey = "auth_user"

func ContextWithUser(ctx context.Context, u *CurrentUser) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

func UserFromContext(ctx context.Context) (*CurrentUser, bool) {
	u, ok := ctx.Value(contextUserKey).(*CurrentUser)
	return u, ok
}
