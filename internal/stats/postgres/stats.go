package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/gym-management/internal/stats"
)

// StatsRepository runs the analytical queries over a sqlx handle. These
// stay as raw SQL; the shapes (HAVING, correlated subqueries, ANY/ALL)
// do not map onto the ORM.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) UsersByRole(ctx context.Context) ([]stats.RoleCount, error) {
	const query = `
		SELECT r.name AS role, COUNT(u.id) AS count
		FROM roles r
		LEFT JOIN users u ON u.role_id = r.id
		GROUP BY r.name
		ORDER BY count DESC`
	var rows []stats.RoleCount
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) FrequentVisitors(ctx context.Context) ([]stats.UserCheckIns, error) {
	const query = `
		SELECT u.id AS user_id, u.email, u.first_name, u.last_name,
		       COUNT(c.id) AS check_ins
		FROM users u
		JOIN check_ins c ON c.user_id = u.id
		GROUP BY u.id, u.email, u.first_name, u.last_name
		HAVING COUNT(c.id) > 5
		ORDER BY check_ins DESC`
	var rows []stats.UserCheckIns
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) UsersWithoutCheckIns(ctx context.Context) ([]stats.UserSummary, error) {
	const query = `
		SELECT u.id AS user_id, u.email, u.first_name, u.last_name
		FROM users u
		LEFT JOIN check_ins c ON c.user_id = u.id
		WHERE c.id IS NULL
		ORDER BY u.created_at DESC
		LIMIT 20`
	var rows []stats.UserSummary
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) EquipmentLatestMaintenance(ctx context.Context) ([]stats.EquipmentLatest, error) {
	const query = `
		SELECT e.id AS equipment_id, e.name, e.category,
		       (SELECT MAX(m.date) FROM maintenance m
		        WHERE m.equipment_id = e.id) AS last_maintained
		FROM equipment e
		ORDER BY last_maintained DESC NULLS LAST
		LIMIT 15`
	var rows []stats.EquipmentLatest
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) AboveAverageMemberships(ctx context.Context) ([]stats.MembershipPrice, error) {
	const query = `
		SELECT um.id AS user_membership_id, um.user_id, m.name AS plan_name, m.price
		FROM user_memberships um
		JOIN memberships m ON m.id = um.membership_id
		WHERE um.active = TRUE
		  AND m.price > (SELECT AVG(price) FROM memberships)
		ORDER BY m.price DESC
		LIMIT 20`
	var rows []stats.MembershipPrice
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) StaffUsers(ctx context.Context) ([]stats.UserSummary, error) {
	const query = `
		SELECT u.id AS user_id, u.email, u.first_name, u.last_name
		FROM users u
		WHERE u.role_id IN (SELECT id FROM roles
		                    WHERE name IN ('RECEPTIONIST', 'TRAINER', 'ADMIN'))
		ORDER BY u.created_at DESC
		LIMIT 20`
	var rows []stats.UserSummary
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) ActiveMembers(ctx context.Context) ([]stats.UserSummary, error) {
	const query = `
		SELECT u.id AS user_id, u.email, u.first_name, u.last_name
		FROM users u
		WHERE EXISTS (SELECT 1 FROM user_memberships um
		              WHERE um.user_id = u.id AND um.active = TRUE)
		ORDER BY u.first_name ASC
		LIMIT 20`
	var rows []stats.UserSummary
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) EquipmentAboveAnyPlan(ctx context.Context) ([]stats.EquipmentPrice, error) {
	const query = `
		SELECT e.id AS equipment_id, e.name, e.purchase_price
		FROM equipment e
		WHERE e.purchase_price > (SELECT MIN(price) FROM memberships)
		ORDER BY e.purchase_price DESC
		LIMIT 10`
	var rows []stats.EquipmentPrice
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *StatsRepository) EquipmentAboveAllPlans(ctx context.Context) ([]stats.EquipmentPrice, error) {
	const query = `
		SELECT e.id AS equipment_id, e.name, e.purchase_price
		FROM equipment e
		WHERE e.purchase_price > (SELECT MAX(price) FROM memberships)
		ORDER BY e.purchase_price DESC
		LIMIT 10`
	var rows []stats.EquipmentPrice
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}
