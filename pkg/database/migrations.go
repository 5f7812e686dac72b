package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. These must match the constraints in the init migration.
//
// The open-conversation index enforces that at most one conversation per
// (organization, channel, contact) is pending or assigned at any time;
// completed conversations are excluded so history can accumulate.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS conversation_open_per_contact
		ON conversations (organization_id, channel_id, contact_id)
		WHERE status IN ('pending', 'assigned')`)
	if err != nil {
		return fmt.Errorf("failed to create open-conversation index: %w", err)
	}

	return nil
}
