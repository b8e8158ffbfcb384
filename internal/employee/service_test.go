package employee_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/employee"
	"github.com/frahmantamala/gym-management/internal/role"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// Mock repository for testing
type mockEmployeeRepository struct {
	users             map[int64]*datamodel.User
	employees         map[int64]*datamodel.Employee
	trainers          map[int64]*datamodel.Trainer
	receptionists     map[int64]*datamodel.Receptionist
	activeMemberships map[int64]int64
	roleUpdates       map[int64]int64
	createError       error
	nextID            int64
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		users:             make(map[int64]*datamodel.User),
		employees:         make(map[int64]*datamodel.Employee),
		trainers:          make(map[int64]*datamodel.Trainer),
		receptionists:     make(map[int64]*datamodel.Receptionist),
		activeMemberships: make(map[int64]int64),
		roleUpdates:       make(map[int64]int64),
		nextID:            1,
	}
}

func (m *mockEmployeeRepository) Transaction(fn func(tx employee.Repository) error) error {
	return fn(m)
}

func (m *mockEmployeeRepository) GetEmployee(id int64) (*datamodel.Employee, error) {
	emp, exists := m.employees[id]
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}
	out := *emp
	if user, ok := m.users[emp.UserID]; ok {
		out.User = *user
	}
	for _, t := range m.trainers {
		if t.EmployeeID == id {
			trainer := *t
			out.Trainer = &trainer
		}
	}
	for _, rec := range m.receptionists {
		if rec.EmployeeID == id {
			receptionist := *rec
			out.Receptionist = &receptionist
		}
	}
	return &out, nil
}

func (m *mockEmployeeRepository) ListEmployees() ([]datamodel.Employee, error) {
	employees := make([]datamodel.Employee, 0, len(m.employees))
	for id := range m.employees {
		emp, _ := m.GetEmployee(id)
		employees = append(employees, *emp)
	}
	return employees, nil
}

func (m *mockEmployeeRepository) CreateEmployee(e *datamodel.Employee) error {
	if m.createError != nil {
		return m.createError
	}
	e.ID = m.nextID
	m.nextID++
	stored := *e
	m.employees[e.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) SaveEmployee(e *datamodel.Employee) error {
	stored := *e
	m.employees[e.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) DeleteEmployee(id int64) error {
	for tid, t := range m.trainers {
		if t.EmployeeID == id {
			delete(m.trainers, tid)
		}
	}
	for rid, rec := range m.receptionists {
		if rec.EmployeeID == id {
			delete(m.receptionists, rid)
		}
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepository) GetTrainer(id int64) (*datamodel.Trainer, error) {
	trainer, exists := m.trainers[id]
	if !exists {
		return nil, internal.ErrTrainerNotFound
	}
	return trainer, nil
}

func (m *mockEmployeeRepository) ListTrainers() ([]datamodel.Trainer, error) {
	trainers := make([]datamodel.Trainer, 0, len(m.trainers))
	for _, t := range m.trainers {
		trainers = append(trainers, *t)
	}
	return trainers, nil
}

func (m *mockEmployeeRepository) CreateTrainer(t *datamodel.Trainer) error {
	if m.createError != nil {
		return m.createError
	}
	t.ID = m.nextID
	m.nextID++
	stored := *t
	m.trainers[t.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) SaveTrainer(t *datamodel.Trainer) error {
	stored := *t
	m.trainers[t.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) ListReceptionists() ([]datamodel.Receptionist, error) {
	receptionists := make([]datamodel.Receptionist, 0, len(m.receptionists))
	for _, rec := range m.receptionists {
		receptionists = append(receptionists, *rec)
	}
	return receptionists, nil
}

func (m *mockEmployeeRepository) CreateReceptionist(rec *datamodel.Receptionist) error {
	if m.createError != nil {
		return m.createError
	}
	rec.ID = m.nextID
	m.nextID++
	stored := *rec
	m.receptionists[rec.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) SaveReceptionist(rec *datamodel.Receptionist) error {
	stored := *rec
	m.receptionists[rec.ID] = &stored
	return nil
}

func (m *mockEmployeeRepository) GetUserWithEmployee(id int64) (*datamodel.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	out := *user
	out.Employee = nil
	for _, emp := range m.employees {
		if emp.UserID == id {
			e := *emp
			out.Employee = &e
		}
	}
	return &out, nil
}

func (m *mockEmployeeRepository) CountActiveMemberships(userID int64) (int64, error) {
	return m.activeMemberships[userID], nil
}

func (m *mockEmployeeRepository) UpdateUserRole(userID, roleID int64) error {
	m.roleUpdates[userID] = roleID
	if user, exists := m.users[userID]; exists {
		user.RoleID = roleID
	}
	return nil
}

// Stub role resolver backed by a fixed table
type stubRoleResolver struct{}

var roleIDs = map[string]int64{
	role.User:         1,
	role.Member:       2,
	role.Receptionist: 3,
	role.Trainer:      4,
	role.Admin:        5,
}

func (stubRoleResolver) ResolveRoleID(name string) (int64, error) {
	id, ok := roleIDs[name]
	if !ok {
		return 0, internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	return id, nil
}

func (stubRoleResolver) RoleName(id int64) (string, error) {
	for name, roleID := range roleIDs {
		if roleID == id {
			return name, nil
		}
	}
	return "", internal.NewConfigurationError("role not seeded", nil)
}

var _ = Describe("EmployeeService", func() {
	var (
		service  *employee.Service
		mockRepo *mockEmployeeRepository
		logger   *slog.Logger
	)

	hireDate := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	addUser := func(id int64, roleName string) *datamodel.User {
		user := &datamodel.User{
			ID:     id,
			Email:  "staff@gym.local",
			RoleID: roleIDs[roleName],
		}
		mockRepo.users[id] = user
		return user
	}

	BeforeEach(func() {
		mockRepo = newMockEmployeeRepository()
		mockRepo.nextID = 1000
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, stubRoleResolver{}, logger)
	})

	Describe("Hire", func() {
		Context("when hiring with trainer fields", func() {
			It("should create the trainer record and set the TRAINER role", func() {
				addUser(1, role.Member)

				result, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3200,
					Trainer: &employee.TrainerFieldsDTO{
						Specialization:  strPtr("strength"),
						ExperienceYears: intPtr(4),
					},
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Trainer).ToNot(BeNil())
				Expect(result.Trainer.Specialization).To(Equal("strength"))
				Expect(mockRepo.roleUpdates[1]).To(Equal(roleIDs[role.Trainer]))
			})

			It("should reject an unknown supervisor", func() {
				addUser(1, role.User)
				missing := int64(999)

				_, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3200,
					Trainer: &employee.TrainerFieldsDTO{
						Specialization:  strPtr("strength"),
						ExperienceYears: intPtr(4),
						SupervisorID:    &missing,
					},
				})

				Expect(err).To(MatchError(internal.ErrSupervisorNotFound))
				Expect(mockRepo.employees).To(BeEmpty())
			})

			It("should link a valid supervisor", func() {
				addUser(1, role.User)
				mockRepo.trainers[500] = &datamodel.Trainer{ID: 500, EmployeeID: 400, Specialization: "yoga"}
				supervisor := int64(500)

				result, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3200,
					Trainer: &employee.TrainerFieldsDTO{
						Specialization:  strPtr("pilates"),
						ExperienceYears: intPtr(2),
						SupervisorID:    &supervisor,
					},
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(*result.Trainer.SupervisorID).To(Equal(supervisor))
			})
		})

		Context("when hiring with receptionist fields", func() {
			It("should create the receptionist record and set the RECEPTIONIST role", func() {
				addUser(1, role.User)

				result, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   2100,
					Receptionist: &employee.ReceptionistFieldsDTO{
						ShiftHours: strPtr("06:00-14:00"),
					},
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Receptionist).ToNot(BeNil())
				Expect(result.Receptionist.ShiftHours).To(Equal("06:00-14:00"))
				Expect(mockRepo.roleUpdates[1]).To(Equal(roleIDs[role.Receptionist]))
			})
		})

		Context("when hiring with both trainer and receptionist fields", func() {
			It("should set the TRAINER role", func() {
				addUser(1, role.User)

				_, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3500,
					Trainer: &employee.TrainerFieldsDTO{
						Specialization:  strPtr("crossfit"),
						ExperienceYears: intPtr(6),
					},
					Receptionist: &employee.ReceptionistFieldsDTO{
						ShiftHours: strPtr("14:00-22:00"),
					},
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(mockRepo.roleUpdates[1]).To(Equal(roleIDs[role.Trainer]))
			})
		})

		Context("when hiring without sub-role fields", func() {
			It("should leave the user's role untouched", func() {
				addUser(1, role.Member)

				result, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   2800,
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Trainer).To(BeNil())
				Expect(result.Receptionist).To(BeNil())
				Expect(mockRepo.roleUpdates).To(BeEmpty())
			})
		})

		Context("when the user is already an employee", func() {
			It("should return a conflict", func() {
				addUser(1, role.Trainer)
				mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate}

				_, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3000,
				})

				Expect(err).To(MatchError(internal.ErrAlreadyEmployee))
			})
		})

		Context("when validation fails", func() {
			It("should require experience years alongside specialization", func() {
				addUser(1, role.User)

				_, err := service.Hire(employee.HireDTO{
					UserID:   1,
					HireDate: hireDate,
					Salary:   3000,
					Trainer: &employee.TrainerFieldsDTO{
						Specialization: strPtr("strength"),
					},
				})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("experience_years"))
			})

			It("should return not found for an unknown user", func() {
				_, err := service.Hire(employee.HireDTO{
					UserID:   99,
					HireDate: hireDate,
					Salary:   3000,
				})

				Expect(err).To(MatchError(internal.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateEmployee", func() {
		BeforeEach(func() {
			addUser(1, role.Trainer)
			mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate, Salary: 3000}
			mockRepo.trainers[11] = &datamodel.Trainer{ID: 11, EmployeeID: 10, Specialization: "strength", ExperienceYears: 4}
		})

		It("should patch salary in place", func() {
			newSalary := 3600.0

			result, err := service.UpdateEmployee(10, employee.UpdateEmployeeDTO{Salary: &newSalary})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Salary).To(Equal(newSalary))
		})

		It("should patch an existing trainer record", func() {
			result, err := service.UpdateEmployee(10, employee.UpdateEmployeeDTO{
				Trainer: &employee.TrainerFieldsDTO{ExperienceYears: intPtr(5)},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Trainer.ExperienceYears).To(Equal(5))
			Expect(result.Trainer.Specialization).To(Equal("strength"))
		})

		It("should create a receptionist record when absent", func() {
			result, err := service.UpdateEmployee(10, employee.UpdateEmployeeDTO{
				Receptionist: &employee.ReceptionistFieldsDTO{ShiftHours: strPtr("08:00-16:00")},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Receptionist).ToNot(BeNil())
			Expect(result.Receptionist.ShiftHours).To(Equal("08:00-16:00"))
		})

		It("should require full trainer fields when creating the record", func() {
			addUser(2, role.Receptionist)
			mockRepo.employees[20] = &datamodel.Employee{ID: 20, UserID: 2, HireDate: hireDate}

			_, err := service.UpdateEmployee(20, employee.UpdateEmployeeDTO{
				Trainer: &employee.TrainerFieldsDTO{Specialization: strPtr("spinning")},
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("experience_years"))
		})

		It("should reject an empty patch", func() {
			_, err := service.UpdateEmployee(10, employee.UpdateEmployeeDTO{})

			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown employee", func() {
			newSalary := 100.0

			_, err := service.UpdateEmployee(99, employee.UpdateEmployeeDTO{Salary: &newSalary})

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Terminate", func() {
		It("should delete the employee and fall back to MEMBER with an active membership", func() {
			addUser(1, role.Trainer)
			mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate}
			mockRepo.trainers[11] = &datamodel.Trainer{ID: 11, EmployeeID: 10}
			mockRepo.activeMemberships[1] = 1

			err := service.Terminate(10)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.employees).To(BeEmpty())
			Expect(mockRepo.trainers).To(BeEmpty())
			Expect(mockRepo.roleUpdates[1]).To(Equal(roleIDs[role.Member]))
		})

		It("should fall back to USER without an active membership", func() {
			addUser(1, role.Receptionist)
			mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate}
			mockRepo.receptionists[12] = &datamodel.Receptionist{ID: 12, EmployeeID: 10, ShiftHours: "06:00-14:00"}

			err := service.Terminate(10)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.receptionists).To(BeEmpty())
			Expect(mockRepo.roleUpdates[1]).To(Equal(roleIDs[role.User]))
		})

		It("should leave an admin's role untouched", func() {
			addUser(1, role.Admin)
			mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate}

			err := service.Terminate(10)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.employees).To(BeEmpty())
			Expect(mockRepo.roleUpdates).To(BeEmpty())
		})

		It("should leave a plain employee's role untouched", func() {
			addUser(1, role.Member)
			mockRepo.employees[10] = &datamodel.Employee{ID: 10, UserID: 1, HireDate: hireDate}
			mockRepo.activeMemberships[1] = 1

			err := service.Terminate(10)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.roleUpdates).To(BeEmpty())
		})

		It("should return not found for an unknown employee", func() {
			err := service.Terminate(99)

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})
})
