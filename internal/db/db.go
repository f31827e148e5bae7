package db

import (
	"fmt"

	"talenthub/internal/jobs"
	"talenthub/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns the driver's unique violation into
	// gorm.ErrDuplicatedKey, which the user store maps to ErrDuplicateEmail.
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&user.User{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// Email uniqueness is the store-level guarantee the whole auth flow
	// leans on; make sure it exists even if the column tag changes.
	if err := gdb.Exec(`create unique index if not exists uq_users_email on users(email);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
