package stats

import "time"

// Dashboard bundles the reporting aggregates served by the stats endpoint.
type Dashboard struct {
	UsersByRole             []RoleCount        `json:"users_by_role"`
	FrequentVisitors        []UserCheckIns     `json:"frequent_visitors"`
	UsersWithoutCheckIns    []UserSummary      `json:"users_without_check_ins"`
	EquipmentMaintenance    []EquipmentLatest  `json:"equipment_latest_maintenance"`
	AboveAverageMemberships []MembershipPrice  `json:"above_average_memberships"`
	StaffUsers              []UserSummary      `json:"staff_users"`
	ActiveMembers           []UserSummary      `json:"active_members"`
	EquipmentAboveAnyPlan   []EquipmentPrice   `json:"equipment_above_any_plan"`
	EquipmentAboveAllPlans  []EquipmentPrice   `json:"equipment_above_all_plans"`
}

type RoleCount struct {
	Role  string `db:"role" json:"role"`
	Count int64  `db:"count" json:"count"`
}

type UserCheckIns struct {
	UserID    int64  `db:"user_id" json:"user_id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	CheckIns  int64  `db:"check_ins" json:"check_ins"`
}

type UserSummary struct {
	UserID    int64  `db:"user_id" json:"user_id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

type EquipmentLatest struct {
	EquipmentID    int64      `db:"equipment_id" json:"equipment_id"`
	Name           string     `db:"name" json:"name"`
	Category       string     `db:"category" json:"category"`
	LastMaintained *time.Time `db:"last_maintained" json:"last_maintained,omitempty"`
}

type MembershipPrice struct {
	UserMembershipID int64   `db:"user_membership_id" json:"user_membership_id"`
	UserID           int64   `db:"user_id" json:"user_id"`
	PlanName         string  `db:"plan_name" json:"plan_name"`
	Price            float64 `db:"price" json:"price"`
}

type EquipmentPrice struct {
	EquipmentID   int64   `db:"equipment_id" json:"equipment_id"`
	Name          string  `db:"name" json:"name"`
	PurchasePrice float64 `db:"purchase_price" json:"purchase_price"`
}
