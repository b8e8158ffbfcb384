package role_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
)

func TestRoleService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Role Service Suite")
}

// Mock repository for testing
type mockRoleRepository struct {
	roles    []datamodel.Role
	getError error
	calls    int
}

func (m *mockRoleRepository) GetAll() ([]datamodel.Role, error) {
	m.calls++
	if m.getError != nil {
		return nil, m.getError
	}
	return m.roles, nil
}

var _ = Describe("RoleService", func() {
	var (
		service  *role.Service
		mockRepo *mockRoleRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = &mockRoleRepository{
			roles: []datamodel.Role{
				{ID: 1, Name: role.User},
				{ID: 2, Name: role.Member},
				{ID: 3, Name: role.Receptionist},
				{ID: 4, Name: role.Trainer},
				{ID: 5, Name: role.Admin},
			},
		}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = role.NewService(mockRepo, logger)
	})

	Describe("ResolveRoleID", func() {
		It("should map each seeded name to its identifier", func() {
			id, err := service.ResolveRoleID(role.Trainer)

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(int64(4)))
		})

		It("should reject an unknown name without touching storage", func() {
			_, err := service.ResolveRoleID("SUPERVISOR")

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.calls).To(BeZero())
		})

		It("should report a valid name missing from the table as a configuration problem", func() {
			mockRepo.roles = mockRepo.roles[:2]

			_, err := service.ResolveRoleID(role.Admin)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not seeded"))
		})

		It("should load the table once and serve later lookups from cache", func() {
			_, err := service.ResolveRoleID(role.User)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.ResolveRoleID(role.Admin)
			Expect(err).ToNot(HaveOccurred())

			Expect(mockRepo.calls).To(Equal(1))
		})

		It("should surface a storage failure", func() {
			mockRepo.getError = errors.New("database connection failed")

			_, err := service.ResolveRoleID(role.User)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RoleName", func() {
		It("should map an identifier back to its name", func() {
			name, err := service.RoleName(2)

			Expect(err).ToNot(HaveOccurred())
			Expect(name).To(Equal(role.Member))
		})

		It("should report an unknown identifier", func() {
			_, err := service.RoleName(42)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("IsValidName", func() {
		It("should accept every seeded role name", func() {
			for _, name := range role.AllNames() {
				Expect(role.IsValidName(name)).To(BeTrue())
			}
		})

		It("should reject names outside the set", func() {
			Expect(role.IsValidName("supervisor")).To(BeFalse())
			Expect(role.IsValidName("")).To(BeFalse())
		})
	})

	Describe("IsStaff", func() {
		It("should treat receptionist, trainer and admin as staff", func() {
			Expect(role.IsStaff(role.Receptionist)).To(BeTrue())
			Expect(role.IsStaff(role.Trainer)).To(BeTrue())
			Expect(role.IsStaff(role.Admin)).To(BeTrue())
		})

		It("should not treat user or member as staff", func() {
			Expect(role.IsStaff(role.User)).To(BeFalse())
			Expect(role.IsStaff(role.Member)).To(BeFalse())
		})
	})
})
