// Package audit records ledger mutations for traceability. Writes are
// best-effort: an audit failure is logged and never fails the mutation
// that triggered it.
package audit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type Recorder struct {
	Pool *pgxpool.Pool
	Log  zerolog.Logger
}

// Record writes one audit row for a mutation against the given
// transaction ids. A nil recorder is a no-op so callers need no guard.
func (r *Recorder) Record(ctx context.Context, ownerID, action string, entityIDs ...string) {
	if r == nil || r.Pool == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := r.Pool.Exec(ctx, `
INSERT INTO audit_logs (owner_id, action, entity_type, entity_ids)
VALUES ($1::uuid, $2, 'transaction', $3::uuid[])
`, ownerID, action, entityIDs)
	if err != nil {
		r.Log.Warn().Err(err).
			Str("owner_id", ownerID).
			Str("action", action).
			Msg("audit write failed")
	}
}
