package audit

import (
	"context"
	"database/sql"
	"fmt"

	"magiccall-admin/pkg/utils"
)

// PostgresRepo persists audit events in console_audit_events.
//
// Schema:
//
//	CREATE TABLE console_audit_events (
//	    id          uuid PRIMARY KEY,
//	    action      text NOT NULL,
//	    actor       text NOT NULL,
//	    ip_address  text NOT NULL DEFAULT '',
//	    resource    text NOT NULL DEFAULT '',
//	    resource_id bigint NOT NULL DEFAULT 0,
//	    message     text NOT NULL DEFAULT '',
//	    created_at  timestamptz NOT NULL
//	);

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	// Single insert still runs through WithTx so the append-only path shares
	// the panic- and rollback-handling of every other write in the codebase.
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		const q = `
			INSERT INTO console_audit_events
				(id, action, actor, ip_address, resource, resource_id, message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := tx.ExecContext(ctx, q,
			e.ID,
			string(e.Action),
			e.ActorUsername,
			e.IPAddress,
			e.Resource,
			e.ResourceID,
			e.Message,
			e.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert audit event: %w", err)
		}
		return nil
	})
}
