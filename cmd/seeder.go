package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/gym-management/internal/role"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with reference and sample data",
	Long:  `Seed roles, an admin account and sample membership plans for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			tables := []string{
				"payments", "user_memberships", "check_ins", "classes",
				"maintenance", "equipment", "trainers", "receptionists",
				"employees", "phone_numbers", "users", "memberships",
			}
			for _, table := range tables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		// Roles are reference data; every role resolution assumes they exist.
		for _, name := range role.AllNames() {
			var exists int
			row := db.Raw("SELECT 1 FROM roles WHERE name = ?", name).Row()
			if err := row.Scan(&exists); err != nil {
				if err := db.Exec("INSERT INTO roles (name) VALUES (?)", name).Error; err != nil {
					log.Fatalf("failed to insert role %s: %v", name, err)
				}
				fmt.Printf("Seeded role: %s\n", name)
			}
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		adminEmail := "admin@gym.local"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&exists); err != nil {
			insert := `INSERT INTO users (email, password_hash, first_name, last_name, role_id, created_at, updated_at)
				VALUES (?, ?, 'Admin', 'User', (SELECT id FROM roles WHERE name = ?), now(), now())`
			if err := db.Exec(insert, adminEmail, string(hash), role.Admin).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		} else {
			fmt.Println("admin user already exists")
		}

		plans := []struct {
			Name   string
			Months int
			Price  float64
			Desc   string
		}{
			{"Monthly", 1, 49.90, "one month, full gym access"},
			{"Quarterly", 3, 129.90, "three months, full gym access"},
			{"Semi-Annual", 6, 239.90, "six months, full gym access"},
			{"Annual", 12, 419.90, "twelve months, full gym access"},
		}

		for _, p := range plans {
			var exists int
			row := db.Raw("SELECT 1 FROM memberships WHERE name = ?", p.Name).Row()
			if err := row.Scan(&exists); err != nil {
				insert := "INSERT INTO memberships (name, duration_months, price, description) VALUES (?, ?, ?, ?)"
				if err := db.Exec(insert, p.Name, p.Months, p.Price, p.Desc).Error; err != nil {
					log.Fatalf("failed to insert membership plan %s: %v", p.Name, err)
				}
				fmt.Printf("Seeded membership plan: %s\n", p.Name)
			}
		}

		fmt.Println("Seeding completed")
	},
}
