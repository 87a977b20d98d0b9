package database

import (
	"gorm.io/gorm"

	"petshop/internal/domain"
)

// Migrate creates the schema and, on Postgres, installs the range-exclusion
// constraint that is the authoritative guard against double-booking. The
// application-level overlap scan is a fast path only; two concurrent creates
// that both pass it are serialized here.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Tenant{},
		&domain.Customer{},
		&domain.Pet{},
		&domain.Service{},
		&domain.Appointment{},
		&domain.Payment{},
		&domain.Refund{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		// SQLite has no exclusion constraints; local runs rely on the
		// application-level scan only.
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	// ADD CONSTRAINT has no IF NOT EXISTS, so guard via pg_constraint.
	return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'no_overlap'
	) THEN
		ALTER TABLE appointments
		ADD CONSTRAINT no_overlap EXCLUDE USING gist (
			tenant_id WITH =,
			tstzrange(scheduled_at, end_time, '[)') WITH &&
		) WHERE (status NOT IN ('CANCELLED', 'EXPIRED'));
	END IF;
END
$$;
`).Error
}
