package postgres_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/membership"
	membershipPostgres "github.com/frahmantamala/gym-management/internal/membership/postgres"
)

func TestMembershipRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Membership Postgres Suite")
}

// SQLite-compatible models for testing; the production defaults use
// Postgres functions SQLite does not know.
type SQLiteRole struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

func (SQLiteRole) TableName() string { return "roles" }

type SQLiteUser struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FirstName    string     `gorm:"column:first_name;not null"`
	LastName     string     `gorm:"column:last_name;not null"`
	BirthDate    *time.Time `gorm:"column:birth_date"`
	RoleID       int64      `gorm:"column:role_id;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (SQLiteUser) TableName() string { return "users" }

type SQLiteEmployee struct {
	ID       int64     `gorm:"primaryKey"`
	UserID   int64     `gorm:"column:user_id;uniqueIndex;not null"`
	HireDate time.Time `gorm:"column:hire_date;not null"`
	Salary   float64   `gorm:"column:salary;not null"`
}

func (SQLiteEmployee) TableName() string { return "employees" }

type SQLiteMembership struct {
	ID             int64   `gorm:"primaryKey"`
	Name           string  `gorm:"column:name;not null;index"`
	DurationMonths int     `gorm:"column:duration_months;not null"`
	Price          float64 `gorm:"column:price;not null"`
	Description    string  `gorm:"column:description"`
}

func (SQLiteMembership) TableName() string { return "memberships" }

type SQLiteUserMembership struct {
	ID           int64      `gorm:"primaryKey"`
	UserID       int64      `gorm:"column:user_id;not null;index"`
	MembershipID int64      `gorm:"column:membership_id;not null"`
	StartDate    time.Time  `gorm:"column:start_date;not null"`
	EndDate      *time.Time `gorm:"column:end_date"`
	Active       bool       `gorm:"column:active;not null;default:false"`
}

func (SQLiteUserMembership) TableName() string { return "user_memberships" }

type SQLitePayment struct {
	ID               int64     `gorm:"primaryKey"`
	UserMembershipID int64     `gorm:"column:user_membership_id;not null;index"`
	Amount           float64   `gorm:"column:amount;not null"`
	Method           string    `gorm:"column:method;not null"`
	Date             time.Time `gorm:"column:date;not null"`
	Reference        string    `gorm:"column:reference;uniqueIndex;not null"`
}

func (SQLitePayment) TableName() string { return "payments" }

var _ = Describe("Membership PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo membership.Repository
	)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	seedUser := func(id int64, email string) {
		err := db.Create(&SQLiteUser{
			ID:           id,
			Email:        email,
			PasswordHash: "hash",
			FirstName:    "Jane",
			LastName:     "Doe",
			RoleID:       1,
		}).Error
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&SQLiteRole{},
			&SQLiteUser{},
			&SQLiteEmployee{},
			&SQLiteMembership{},
			&SQLiteUserMembership{},
			&SQLitePayment{},
		)
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&SQLiteRole{ID: 1, Name: "USER"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteRole{ID: 2, Name: "MEMBER"}).Error).NotTo(HaveOccurred())

		repo = membershipPostgres.NewMembershipRepository(db)
	})

	Describe("Plans", func() {
		It("should create and fetch a plan", func() {
			plan := &datamodel.Membership{Name: "Monthly", DurationMonths: 1, Price: 49.90}

			Expect(repo.CreatePlan(plan)).To(Succeed())
			Expect(plan.ID).To(BeNumerically(">", 0))

			fetched, err := repo.GetPlan(plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Name).To(Equal("Monthly"))
			Expect(fetched.DurationMonths).To(Equal(1))
		})

		It("should return the plan sentinel for an unknown id", func() {
			_, err := repo.GetPlan(999)

			Expect(err).To(MatchError(internal.ErrPlanNotFound))
		})

		It("should list plans ordered by name then duration", func() {
			Expect(repo.CreatePlan(&datamodel.Membership{Name: "Classic", DurationMonths: 12, Price: 419.90})).To(Succeed())
			Expect(repo.CreatePlan(&datamodel.Membership{Name: "Classic", DurationMonths: 1, Price: 49.90})).To(Succeed())
			Expect(repo.CreatePlan(&datamodel.Membership{Name: "Aqua", DurationMonths: 3, Price: 129.90})).To(Succeed())

			plans, err := repo.ListPlans()

			Expect(err).NotTo(HaveOccurred())
			Expect(plans).To(HaveLen(3))
			Expect(plans[0].Name).To(Equal("Aqua"))
			Expect(plans[1].Name).To(Equal("Classic"))
			Expect(plans[1].DurationMonths).To(Equal(1))
			Expect(plans[2].DurationMonths).To(Equal(12))
		})
	})

	Describe("User memberships", func() {
		var plan *datamodel.Membership

		BeforeEach(func() {
			seedUser(1, "jane@gym.local")
			plan = &datamodel.Membership{Name: "Monthly", DurationMonths: 1, Price: 49.90}
			Expect(repo.CreatePlan(plan)).To(Succeed())
		})

		It("should create a membership and preload its associations on fetch", func() {
			end := start.AddDate(0, 1, 0)
			um := &datamodel.UserMembership{
				UserID:       1,
				MembershipID: plan.ID,
				StartDate:    start,
				EndDate:      &end,
				Active:       true,
			}

			Expect(repo.CreateUserMembership(um)).To(Succeed())

			fetched, err := repo.GetUserMembership(um.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Active).To(BeTrue())
			Expect(fetched.User.Email).To(Equal("jane@gym.local"))
			Expect(fetched.Membership.Name).To(Equal("Monthly"))
		})

		It("should return the membership sentinel for an unknown id", func() {
			_, err := repo.GetUserMembership(999)

			Expect(err).To(MatchError(internal.ErrUserMembershipNotFound))
		})

		It("should list a single user's memberships newest first", func() {
			seedUser(2, "john@gym.local")
			older := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: false}
			newer := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start.AddDate(0, 2, 0), Active: true}
			other := &datamodel.UserMembership{UserID: 2, MembershipID: plan.ID, StartDate: start, Active: true}
			for _, um := range []*datamodel.UserMembership{older, newer, other} {
				Expect(repo.CreateUserMembership(um)).To(Succeed())
			}

			ums, err := repo.ListUserMembershipsByUser(1)

			Expect(err).NotTo(HaveOccurred())
			Expect(ums).To(HaveLen(2))
			Expect(ums[0].ID).To(Equal(newer.ID))
			Expect(ums[1].ID).To(Equal(older.ID))
		})

		Describe("CountActiveForUser", func() {
			var active *datamodel.UserMembership

			BeforeEach(func() {
				active = &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: true}
				inactive := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: false}
				Expect(repo.CreateUserMembership(active)).To(Succeed())
				Expect(repo.CreateUserMembership(inactive)).To(Succeed())
			})

			It("should count only active rows", func() {
				count, err := repo.CountActiveForUser(1, 0)

				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(1)))
			})

			It("should exclude the given membership id", func() {
				count, err := repo.CountActiveForUser(1, active.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())
			})
		})

		It("should persist an update through SaveUserMembership", func() {
			um := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: true}
			Expect(repo.CreateUserMembership(um)).To(Succeed())

			um.Active = false
			end := start.AddDate(0, 1, 0)
			um.EndDate = &end
			Expect(repo.SaveUserMembership(um)).To(Succeed())

			fetched, err := repo.GetUserMembership(um.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Active).To(BeFalse())
			Expect(fetched.EndDate).NotTo(BeNil())
		})
	})

	Describe("User lookups", func() {
		BeforeEach(func() {
			seedUser(1, "jane@gym.local")
		})

		It("should fetch a user together with the employee record", func() {
			Expect(db.Create(&SQLiteEmployee{UserID: 1, HireDate: start, Salary: 3000}).Error).NotTo(HaveOccurred())

			user, err := repo.GetUserWithEmployee(1)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Employee).NotTo(BeNil())
			Expect(user.Employee.Salary).To(Equal(3000.0))
		})

		It("should leave the employee nil for a plain user", func() {
			user, err := repo.GetUserWithEmployee(1)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Employee).To(BeNil())
		})

		It("should return the user sentinel for an unknown id", func() {
			_, err := repo.GetUserWithEmployee(999)

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("should update the role in place", func() {
			Expect(repo.UpdateUserRole(1, 2)).To(Succeed())

			var stored SQLiteUser
			Expect(db.First(&stored, 1).Error).NotTo(HaveOccurred())
			Expect(stored.RoleID).To(Equal(int64(2)))
		})
	})

	Describe("Transaction", func() {
		BeforeEach(func() {
			seedUser(1, "jane@gym.local")
		})

		It("should roll back every write when the callback fails", func() {
			plan := &datamodel.Membership{Name: "Monthly", DurationMonths: 1, Price: 49.90}
			Expect(repo.CreatePlan(plan)).To(Succeed())

			err := repo.Transaction(func(tx membership.Repository) error {
				um := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: true}
				if err := tx.CreateUserMembership(um); err != nil {
					return err
				}
				if err := tx.UpdateUserRole(1, 2); err != nil {
					return err
				}
				return errors.New("boom")
			})
			Expect(err).To(HaveOccurred())

			count, err := repo.CountActiveForUser(1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			var stored SQLiteUser
			Expect(db.First(&stored, 1).Error).NotTo(HaveOccurred())
			Expect(stored.RoleID).To(Equal(int64(1)))
		})

		It("should commit when the callback succeeds", func() {
			plan := &datamodel.Membership{Name: "Monthly", DurationMonths: 1, Price: 49.90}
			Expect(repo.CreatePlan(plan)).To(Succeed())

			err := repo.Transaction(func(tx membership.Repository) error {
				um := &datamodel.UserMembership{UserID: 1, MembershipID: plan.ID, StartDate: start, Active: true}
				return tx.CreateUserMembership(um)
			})
			Expect(err).NotTo(HaveOccurred())

			count, err := repo.CountActiveForUser(1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})
	})
})
