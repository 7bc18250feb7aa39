package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations and seeds default settings.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedDefaultSettings(db); err != nil {
		return fmt.Errorf("seeding default settings: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		staff_number           TEXT NOT NULL UNIQUE,
		position               TEXT NOT NULL DEFAULT '',
		hourly_rate            REAL NOT NULL DEFAULT 0,
		email                  TEXT NOT NULL DEFAULT '',
		hire_date              TEXT,
		hours_per_week         REAL NOT NULL DEFAULT 40,
		vacation_days_per_year INTEGER NOT NULL DEFAULT 20,
		sick_days_per_year     INTEGER NOT NULL DEFAULT 10,
		active                 INTEGER NOT NULL DEFAULT 1,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_records (
		id            TEXT PRIMARY KEY,
		employee_id   TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		period1_start TEXT,
		period1_end   TEXT,
		period2_start TEXT,
		period2_end   TEXT,
		period3_start TEXT,
		period3_end   TEXT,
		record_type   TEXT NOT NULL
		              CHECK(record_type IN ('work','vacation','sick','holiday')),
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_records_employee_date ON time_records(employee_id, date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// defaultSettings mirrors the values a fresh installation starts with.
// Break rules are "threshold:break" minute pairs, comma separated.
var defaultSettings = [][2]string{
	{"standard_hours_per_day", "8"},
	{"work_days_per_week", "5"},
	{"break_rules", "360:30,540:45"},
	{"max_daily_minutes", "600"},
	{"min_rest_minutes", "660"},
	{"vacation_days_per_year", "20"},
	{"sick_days_per_year", "10"},
	{"company_name", "My Company GmbH"},
	{"company_street", "Businessstraße 123"},
	{"company_city", "10115 Berlin"},
	{"company_phone", "+49-30-1234567"},
	{"company_email", "contact@mycompany.com"},
	{"primary_color", "2B579A"},
	{"secondary_color", "00A4EF"},
	{"tertiary_color", "00A4EF"},
}

func seedDefaultSettings(db *sql.DB) error {
	for _, kv := range defaultSettings {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, datetime('now'))`,
			kv[0], kv[1],
		)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", kv[0], err)
		}
	}
	return nil
}
