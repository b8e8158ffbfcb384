package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/auth"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// Mock user repository for testing
type mockUserRepository struct {
	users map[int64]*datamodel.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*datamodel.User)}
}

func (m *mockUserRepository) GetUser(id int64) (*datamodel.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetUserByEmail(email string) (*datamodel.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

var _ = Describe("AuthService", func() {
	var (
		service  *auth.Service
		mockRepo *mockUserRepository
		tokenGen *auth.JWTTokenGenerator
		logger   *slog.Logger
	)

	addUser := func(id int64, email, password, roleName string) *datamodel.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).ToNot(HaveOccurred())
		u := &datamodel.User{
			ID:           id,
			Email:        email,
			PasswordHash: string(hash),
			Role:         datamodel.Role{ID: 1, Name: roleName},
		}
		mockRepo.users[id] = u
		return u
	}

	BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = auth.NewJWTTokenGenerator("access-secret", "refresh-secret")
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, tokenGen, logger)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			addUser(1, "jane@gym.local", "supersecret", role.Member)
		})

		Context("with valid credentials", func() {
			It("should return a token pair carrying the user's role", func() {
				tokens, err := service.Authenticate(auth.LoginDTO{
					Email:    "jane@gym.local",
					Password: "supersecret",
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(tokens.AccessToken).ToNot(BeEmpty())
				Expect(tokens.RefreshToken).ToNot(BeEmpty())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				Expect(err).ToNot(HaveOccurred())
				Expect(claims.UserID).To(Equal("1"))
				Expect(claims.Email).To(Equal("jane@gym.local"))
				Expect(claims.Role).To(Equal(role.Member))
			})
		})

		Context("with a wrong password", func() {
			It("should return invalid credentials", func() {
				_, err := service.Authenticate(auth.LoginDTO{
					Email:    "jane@gym.local",
					Password: "wrong-password",
				})

				Expect(err).To(MatchError(internal.ErrInvalidCredentials))
			})
		})

		Context("with an unknown email", func() {
			It("should return the same invalid credentials error", func() {
				_, err := service.Authenticate(auth.LoginDTO{
					Email:    "ghost@gym.local",
					Password: "supersecret",
				})

				Expect(err).To(MatchError(internal.ErrInvalidCredentials))
			})
		})

		Context("with missing fields", func() {
			It("should fail validation", func() {
				_, err := service.Authenticate(auth.LoginDTO{Email: "jane@gym.local"})

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("RefreshTokens", func() {
		var user *datamodel.User

		BeforeEach(func() {
			user = addUser(1, "jane@gym.local", "supersecret", role.User)
		})

		It("should rotate the pair for a valid refresh token", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "jane@gym.local",
				Password: "supersecret",
			})
			Expect(err).ToNot(HaveOccurred())

			rotated, err := service.RefreshTokens(tokens.RefreshToken)

			Expect(err).ToNot(HaveOccurred())
			Expect(rotated.AccessToken).ToNot(BeEmpty())
			Expect(rotated.RefreshToken).ToNot(BeEmpty())
		})

		It("should pick up a role change since issuance", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "jane@gym.local",
				Password: "supersecret",
			})
			Expect(err).ToNot(HaveOccurred())

			user.Role = datamodel.Role{ID: 2, Name: role.Member}

			rotated, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).ToNot(HaveOccurred())

			claims, err := service.ValidateAccessToken(rotated.AccessToken)
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.Role).To(Equal(role.Member))
		})

		It("should reject a garbage token", func() {
			_, err := service.RefreshTokens("not-a-token")

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})

		It("should reject a token for a deleted account", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{
				Email:    "jane@gym.local",
				Password: "supersecret",
			})
			Expect(err).ToNot(HaveOccurred())

			delete(mockRepo.users, 1)

			_, err = service.RefreshTokens(tokens.RefreshToken)
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("ValidateAccessToken", func() {
		It("should reject an expired token", func() {
			tokenGen.AccessTokenTTL = -time.Minute
			expired, err := tokenGen.GenerateAccessToken("1", "jane@gym.local", role.User)
			Expect(err).ToNot(HaveOccurred())
			tokenGen.AccessTokenTTL = 15 * time.Minute

			_, err = service.ValidateAccessToken(expired)

			Expect(err).To(MatchError(internal.ErrTokenExpired))
		})

		It("should reject a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("other-secret", "other-refresh")
			foreign, err := other.GenerateAccessToken("1", "jane@gym.local", role.User)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.ValidateAccessToken(foreign)

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("CurrentUserFromClaims", func() {
		It("should resolve claims to the stored account", func() {
			addUser(7, "admin@gym.local", "supersecret", role.Admin)

			current, err := service.CurrentUserFromClaims(&auth.Claims{UserID: "7"})

			Expect(err).ToNot(HaveOccurred())
			Expect(current.ID).To(Equal(int64(7)))
			Expect(current.Email).To(Equal("admin@gym.local"))
			Expect(current.Role).To(Equal(role.Admin))
		})

		It("should reject a non-numeric subject", func() {
			_, err := service.CurrentUserFromClaims(&auth.Claims{UserID: "abc"})

			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})
})
