package class_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/class"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

func TestClassService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Class Service Suite")
}

// Mock repository for testing
type mockClassRepository struct {
	classes  map[int64]*datamodel.Class
	trainers map[int64]bool
	nextID   int64
}

func newMockClassRepository() *mockClassRepository {
	return &mockClassRepository{
		classes:  make(map[int64]*datamodel.Class),
		trainers: make(map[int64]bool),
		nextID:   1,
	}
}

func (m *mockClassRepository) GetClass(id int64) (*datamodel.Class, error) {
	c, exists := m.classes[id]
	if !exists {
		return nil, internal.ErrClassNotFound
	}
	return c, nil
}

func (m *mockClassRepository) ListClasses(trainerID *int64) ([]datamodel.Class, error) {
	var classes []datamodel.Class
	for _, c := range m.classes {
		if trainerID != nil && (c.TrainerID == nil || *c.TrainerID != *trainerID) {
			continue
		}
		classes = append(classes, *c)
	}
	return classes, nil
}

func (m *mockClassRepository) CreateClass(c *datamodel.Class) error {
	c.ID = m.nextID
	m.nextID++
	stored := *c
	m.classes[c.ID] = &stored
	return nil
}

func (m *mockClassRepository) SaveClass(c *datamodel.Class) error {
	stored := *c
	m.classes[c.ID] = &stored
	return nil
}

func (m *mockClassRepository) DeleteClass(id int64) error {
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepository) TrainerExists(id int64) (bool, error) {
	return m.trainers[id], nil
}

var _ = Describe("ClassService", func() {
	var (
		service  *class.Service
		mockRepo *mockClassRepository
		logger   *slog.Logger
	)

	startTime := time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		mockRepo = newMockClassRepository()
		mockRepo.trainers[5] = true
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = class.NewService(mockRepo, logger)
	})

	Describe("CreateClass", func() {
		It("should schedule a class with an assigned trainer", func() {
			trainerID := int64(5)

			result, err := service.CreateClass(class.CreateClassDTO{
				Name:        "Morning Yoga",
				StartTime:   startTime,
				DurationMin: 60,
				TrainerID:   &trainerID,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Name).To(Equal("Morning Yoga"))
			Expect(*result.TrainerID).To(Equal(trainerID))
		})

		It("should schedule a class without a trainer", func() {
			result, err := service.CreateClass(class.CreateClassDTO{
				Name:        "Open Gym",
				StartTime:   startTime,
				DurationMin: 120,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.TrainerID).To(BeNil())
		})

		It("should reject an unknown trainer", func() {
			trainerID := int64(99)

			_, err := service.CreateClass(class.CreateClassDTO{
				Name:        "Morning Yoga",
				StartTime:   startTime,
				DurationMin: 60,
				TrainerID:   &trainerID,
			})

			Expect(err).To(MatchError(internal.ErrTrainerNotFound))
		})

		It("should reject a non-positive duration", func() {
			_, err := service.CreateClass(class.CreateClassDTO{
				Name:      "Morning Yoga",
				StartTime: startTime,
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("duration_min"))
		})
	})

	Describe("UpdateClass", func() {
		BeforeEach(func() {
			mockRepo.classes[1] = &datamodel.Class{
				ID: 1, Name: "Morning Yoga", StartTime: startTime, DurationMin: 60,
			}
		})

		It("should patch the given fields only", func() {
			duration := 90

			result, err := service.UpdateClass(1, class.UpdateClassDTO{DurationMin: &duration})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.DurationMin).To(Equal(90))
			Expect(result.Name).To(Equal("Morning Yoga"))
		})

		It("should validate a newly assigned trainer", func() {
			trainerID := int64(99)

			_, err := service.UpdateClass(1, class.UpdateClassDTO{TrainerID: &trainerID})

			Expect(err).To(MatchError(internal.ErrTrainerNotFound))
		})

		It("should reject an empty patch", func() {
			_, err := service.UpdateClass(1, class.UpdateClassDTO{})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListClasses", func() {
		BeforeEach(func() {
			trainerID := int64(5)
			mockRepo.classes[1] = &datamodel.Class{ID: 1, Name: "Morning Yoga", StartTime: startTime, DurationMin: 60, TrainerID: &trainerID}
			mockRepo.classes[2] = &datamodel.Class{ID: 2, Name: "Open Gym", StartTime: startTime, DurationMin: 120}
		})

		It("should return every class without a filter", func() {
			classes, err := service.ListClasses(nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(classes).To(HaveLen(2))
		})

		It("should filter by trainer", func() {
			trainerID := int64(5)

			classes, err := service.ListClasses(&trainerID)

			Expect(err).ToNot(HaveOccurred())
			Expect(classes).To(HaveLen(1))
			Expect(classes[0].Name).To(Equal("Morning Yoga"))
		})
	})

	Describe("DeleteClass", func() {
		It("should remove an existing class", func() {
			mockRepo.classes[1] = &datamodel.Class{ID: 1, Name: "Morning Yoga", StartTime: startTime, DurationMin: 60}

			Expect(service.DeleteClass(1)).To(Succeed())
			Expect(mockRepo.classes).To(BeEmpty())
		})

		It("should return not found for an unknown class", func() {
			err := service.DeleteClass(99)

			Expect(err).To(MatchError(internal.ErrClassNotFound))
		})
	})
})
