package database

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

type seedDepartment struct {
	Name        string
	Description string
	Positions   []seedPosition
}

type seedPosition struct {
	Name           string
	SeniorityLevel string
	MinSalary      string
	MaxSalary      string
}

var defaultDepartments = []seedDepartment{
	{
		Name:        "Human Resources",
		Description: "People operations, payroll and performance management",
		Positions: []seedPosition{
			{Name: "HR Specialist", SeniorityLevel: "mid", MinSalary: "1200.00", MaxSalary: "2000.00"},
			{Name: "HR Manager", SeniorityLevel: "senior", MinSalary: "2200.00", MaxSalary: "3500.00"},
		},
	},
	{
		Name:        "Engineering",
		Description: "Product development and infrastructure",
		Positions: []seedPosition{
			{Name: "Engineer", SeniorityLevel: "junior", MinSalary: "1000.00", MaxSalary: "1800.00"},
			{Name: "Senior Engineer", SeniorityLevel: "senior", MinSalary: "2500.00", MaxSalary: "4500.00"},
		},
	},
	{
		Name:        "Finance",
		Description: "Accounting and financial planning",
		Positions: []seedPosition{
			{Name: "Analyst", SeniorityLevel: "mid", MinSalary: "1300.00", MaxSalary: "2300.00"},
		},
	},
}

// Seed inserts a default admin account and a small set of departments and positions.
// Rows that already exist are left untouched, so Seed is safe to run on every start.
func (db *DB) Seed(ctx context.Context, adminEmail, adminPassword string) error {
	for _, d := range defaultDepartments {
		departmentID, err := db.ensureDepartment(ctx, d)
		if err != nil {
			return err
		}
		for _, p := range d.Positions {
			if err := db.ensurePosition(ctx, departmentID, p); err != nil {
				return err
			}
		}
	}

	if err := db.ensureAdminUser(ctx, adminEmail, adminPassword); err != nil {
		return err
	}

	slog.Info("seed completed", "admin_email", adminEmail)
	return nil
}

func (db *DB) ensureDepartment(ctx context.Context, d seedDepartment) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, d.Name, d.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed department %q: %w", d.Name, err)
	}
	return id, nil
}

func (db *DB) ensurePosition(ctx context.Context, departmentID int64, p seedPosition) error {
	_, err := db.Exec(ctx, `
		INSERT INTO positions (department_id, name, seniority_level, min_salary, max_salary, default_benefits)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, '[]'::jsonb)
		ON CONFLICT (department_id, name) DO NOTHING
	`, departmentID, p.Name, p.SeniorityLevel, p.MinSalary, p.MaxSalary)
	if err != nil {
		return fmt.Errorf("seed position %q: %w", p.Name, err)
	}
	return nil
}

func (db *DB) ensureAdminUser(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES ('Administrator', $1, $2, 'admin', TRUE)
		ON CONFLICT (email) DO NOTHING
	`, email, string(hash))
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
