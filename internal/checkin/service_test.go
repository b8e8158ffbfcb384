package checkin_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/checkin"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

func TestCheckInService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CheckIn Service Suite")
}

// Mock repository for testing
type mockCheckInRepository struct {
	checkIns map[int64]*datamodel.CheckIn
	users    map[int64]bool
	nextID   int64
}

func newMockCheckInRepository() *mockCheckInRepository {
	return &mockCheckInRepository{
		checkIns: make(map[int64]*datamodel.CheckIn),
		users:    make(map[int64]bool),
		nextID:   1,
	}
}

func (m *mockCheckInRepository) GetCheckIn(id int64) (*datamodel.CheckIn, error) {
	c, exists := m.checkIns[id]
	if !exists {
		return nil, internal.ErrCheckInNotFound
	}
	return c, nil
}

func (m *mockCheckInRepository) ListCheckIns(userID *int64) ([]datamodel.CheckIn, error) {
	var checkIns []datamodel.CheckIn
	for _, c := range m.checkIns {
		if userID != nil && c.UserID != *userID {
			continue
		}
		checkIns = append(checkIns, *c)
	}
	return checkIns, nil
}

func (m *mockCheckInRepository) CreateCheckIn(c *datamodel.CheckIn) error {
	c.ID = m.nextID
	m.nextID++
	stored := *c
	m.checkIns[c.ID] = &stored
	return nil
}

func (m *mockCheckInRepository) UserExists(id int64) (bool, error) {
	return m.users[id], nil
}

var _ = Describe("CheckInService", func() {
	var (
		service  *checkin.Service
		mockRepo *mockCheckInRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockCheckInRepository()
		mockRepo.users[1] = true
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = checkin.NewService(mockRepo, logger)
	})

	Describe("CheckIn", func() {
		It("should record a visit with an explicit timestamp", func() {
			visitTime := time.Date(2026, time.March, 1, 18, 30, 0, 0, time.UTC)

			result, err := service.CheckIn(checkin.CreateCheckInDTO{
				UserID:      1,
				CheckInTime: &visitTime,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.UserID).To(Equal(int64(1)))
			Expect(result.CheckInTime).To(Equal(visitTime))
		})

		It("should default the timestamp to now when omitted", func() {
			before := time.Now()

			result, err := service.CheckIn(checkin.CreateCheckInDTO{UserID: 1})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.CheckInTime).To(BeTemporally(">=", before))
			Expect(result.CheckInTime).To(BeTemporally("<=", time.Now()))
		})

		It("should return not found for an unknown user", func() {
			_, err := service.CheckIn(checkin.CreateCheckInDTO{UserID: 99})

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("should reject a missing user id", func() {
			_, err := service.CheckIn(checkin.CreateCheckInDTO{})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListCheckIns", func() {
		BeforeEach(func() {
			visit := time.Date(2026, time.March, 1, 18, 30, 0, 0, time.UTC)
			mockRepo.checkIns[10] = &datamodel.CheckIn{ID: 10, UserID: 1, CheckInTime: visit}
			mockRepo.checkIns[11] = &datamodel.CheckIn{ID: 11, UserID: 2, CheckInTime: visit}
		})

		It("should return every visit without a filter", func() {
			checkIns, err := service.ListCheckIns(nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(checkIns).To(HaveLen(2))
		})

		It("should filter by user", func() {
			userID := int64(1)

			checkIns, err := service.ListCheckIns(&userID)

			Expect(err).ToNot(HaveOccurred())
			Expect(checkIns).To(HaveLen(1))
			Expect(checkIns[0].UserID).To(Equal(userID))
		})
	})

	Describe("GetCheckIn", func() {
		It("should return not found for an unknown id", func() {
			_, err := service.GetCheckIn(99)

			Expect(err).To(MatchError(internal.ErrCheckInNotFound))
		})
	})
})
