package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"oirla/internal/audit"
	"oirla/internal/platform/database"
	"oirla/internal/platform/tracing"
	id "oirla/pkg/domain"

	"github.com/google/uuid"
)

const savepointName = "audit_append"

// PostgresStore implements audit.Store on the audit_log table.
type PostgresStore struct {
	db     database.DBTX
	tracer tracing.Tracer
}

// NewPostgres creates an audit store on db, which may be a pool or a transaction.
func NewPostgres(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db, tracer: tracing.NewNoop()}
}

// WithTracer attaches a tracer to the store.
func (s *PostgresStore) WithTracer(t tracing.Tracer) *PostgresStore {
	if t != nil {
		s.tracer = t
	}
	return s
}

// Append inserts one audit record. When the store is bound to a transaction
// the insert runs under a savepoint, so a failed append leaves the
// enclosing transaction usable.
func (s *PostgresStore) Append(ctx context.Context, entry audit.Entry) (err error) {
	tx, inTx := s.db.(*sql.Tx)
	ctx, span := s.tracer.Start(ctx, tracing.SpanAuditAppend,
		tracing.String(tracing.AttrAuditAction, string(entry.Action)),
		tracing.Bool(tracing.AttrSavepoint, inTx),
	)
	defer func() { span.End(err) }()

	if !inTx {
		return s.insert(ctx, s.db, entry)
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepointName); err != nil {
		return fmt.Errorf("create audit savepoint: %w", err)
	}
	if err := s.insert(ctx, tx, entry); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepointName); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback audit savepoint: %w", rbErr))
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepointName); err != nil {
		return fmt.Errorf("release audit savepoint: %w", err)
	}
	return nil
}

func (s *PostgresStore) insert(ctx context.Context, db database.DBTX, entry audit.Entry) error {
	prior, err := marshalSnapshot(entry.Prior)
	if err != nil {
		return fmt.Errorf("marshal prior state: %w", err)
	}
	next, err := marshalSnapshot(entry.New)
	if err != nil {
		return fmt.Errorf("marshal new state: %w", err)
	}

	var actor *uuid.UUID
	if !entry.ActorID.IsNil() {
		a := uuid.UUID(entry.ActorID)
		actor = &a
	}
	var entityID *uuid.UUID
	if entry.EntityID != uuid.Nil {
		e := entry.EntityID
		entityID = &e
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO audit_log (
			id, actor_identity_id, action, entity_kind, entity_id,
			prior_state, new_state, origin_address, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9)`,
		uuid.UUID(id.NewAuditID()),
		actor,
		string(entry.Action),
		string(entry.EntityKind),
		entityID,
		prior,
		next,
		database.NullString(entry.OriginAddress),
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// List returns records newest first with the actor's current email, which
// is NULL once the actor has been deleted.
func (s *PostgresStore) List(ctx context.Context, page audit.Page) ([]audit.Record, error) {
	page = page.Normalize()
	rows, err := s.db.QueryContext(ctx, `
		SELECT al.id, al.actor_identity_id, u.email, al.action, al.entity_kind,
		       al.entity_id, al.prior_state, al.new_state, al.origin_address, al.created_at
		FROM audit_log al
		LEFT JOIN users u ON u.id = al.actor_identity_id
		ORDER BY al.created_at DESC, al.id DESC
		LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	records := make([]audit.Record, 0, page.Limit)
	for rows.Next() {
		var (
			rec      audit.Record
			recID    uuid.UUID
			actor    *uuid.UUID
			email    sql.NullString
			entityID *uuid.UUID
			prior    []byte
			next     []byte
			origin   sql.NullString
			action   string
			kind     string
		)
		if err := rows.Scan(&recID, &actor, &email, &action, &kind,
			&entityID, &prior, &next, &origin, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		rec.ID = id.AuditID(recID)
		rec.Action = audit.Action(action)
		rec.EntityKind = audit.EntityKind(kind)
		rec.OriginAddress = origin.String
		rec.CreatedAt = rec.CreatedAt.UTC()
		if actor != nil {
			a := actor.String()
			rec.ActorID = &a
		}
		if email.Valid {
			rec.ActorEmail = &email.String
		}
		if entityID != nil {
			e := entityID.String()
			rec.EntityID = &e
		}
		if rec.Prior, err = unmarshalSnapshot(prior); err != nil {
			return nil, err
		}
		if rec.New, err = unmarshalSnapshot(next); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return records, nil
}

func marshalSnapshot(s audit.Snapshot) (*string, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := string(b)
	return &out, nil
}

func unmarshalSnapshot(b []byte) (audit.Snapshot, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var s audit.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode audit snapshot: %w", err)
	}
	return s, nil
}

var _ audit.Store = (*PostgresStore)(nil)
