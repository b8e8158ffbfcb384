package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

// UserRepository is the slice of user storage auth needs. The user
// package's repository satisfies it.
type UserRepository interface {
	GetUserByEmail(email string) (*datamodel.User, error)
	GetUser(id int64) (*datamodel.User, error)
}

type Service struct {
	users  UserRepository
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(users UserRepository, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    24 * 7 * time.Hour,
	}
}

// Authenticate validates credentials and returns a token pair. Unknown
// email and wrong password collapse into the same error.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	user, err := s.users.GetUserByEmail(dto.Email)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return AuthTokens{}, internal.ErrInvalidCredentials
		}
		return AuthTokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshTokens validates a refresh token and rotates the pair. The user
// is reloaded so a role change since issuance lands in the new tokens.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidToken
	}

	user, err := s.users.GetUser(userID)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return AuthTokens{}, internal.ErrInvalidToken
		}
		return AuthTokens{}, err
	}

	return s.issueTokens(user)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// CurrentUserFromClaims resolves token claims to the stored account.
func (s *Service) CurrentUserFromClaims(claims *Claims) (*CurrentUser, error) {
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	user, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}

	return &CurrentUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.Name,
	}, nil
}

func (s *Service) issueTokens(user *datamodel.User) (AuthTokens, error) {
	userID := strconv.FormatInt(user.ID, 10)
	roleName := user.Role.Name

	accessToken, err := s.tokens.GenerateAccessToken(userID, user.Email, roleName)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "user_id", user.ID)
		return AuthTokens{}, internal.NewInternalError("failed to generate access token", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(userID, user.Email, roleName)
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err, "user_id", user.ID)
		return AuthTokens{}, internal.NewInternalError("failed to generate refresh token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID, email, role string) (string, error) {
	return j.sign(userID, email, role, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID, email, role string) (string, error) {
	return j.sign(userID, email, role, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) sign(userID, email, role string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses a token against both secrets. Refresh tokens are
// recognized by their longer remaining lifetime.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if claims, ok := token.Claims.(*Claims); ok && claims.ExpiresAt != nil {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, internal.ErrInvalidToken
}
