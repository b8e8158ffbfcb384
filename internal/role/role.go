package role

// Role names form a closed set. The database keeps a lookup table because
// users carry a numeric role_id foreign key; everything above the repository
// speaks in these names.
const (
	User         = "USER"
	Member       = "MEMBER"
	Receptionist = "RECEPTIONIST"
	Trainer      = "TRAINER"
	Admin        = "ADMIN"
)

var allNames = []string{User, Member, Receptionist, Trainer, Admin}

func AllNames() []string {
	names := make([]string, len(allNames))
	copy(names, allNames)
	return names
}

func IsValidName(name string) bool {
	for _, n := range allNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsStaff reports whether a role implies an employment record.
func IsStaff(name string) bool {
	return name == Trainer || name == Receptionist || name == Admin
}
