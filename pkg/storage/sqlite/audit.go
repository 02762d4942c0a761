// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"
	"database/sql"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/storage"
)

type auditStore struct {
	s *Store
}

var _ storage.AuditStore = (*auditStore)(nil)

// Append writes one audit entry. There is no update or delete on this
// store; the schema backs that up with append-only triggers.
func (a *auditStore) Append(ctx context.Context, rayID string, entry *core.AuditEntry) core.Result {
	detail := entry.Detail
	if detail == "" {
		detail = "{}"
	}
	_, err := a.s.q.ExecContext(ctx, `
		INSERT INTO oauth_audit_log (
			id, event_type, actor, client_id, user_id, token_id,
			ray_id, detail, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.EventType,
		entry.Actor,
		nullableText(entry.ClientID),
		nullableText(entry.UserID),
		nullableText(entry.TokenID),
		entry.RayID,
		detail,
		entry.CreatedAt,
	)
	if err != nil {
		logger.Errorw("appending audit entry", "ray_id", rayID, "event_type", entry.EventType, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not append audit entry")
	}
	return core.Success(rayID)
}

// ListByRayID returns all entries recorded under one request, oldest first.
func (a *auditStore) ListByRayID(ctx context.Context, rayID, target string) core.ValueResult[[]*core.AuditEntry] {
	rows, err := a.s.q.QueryContext(ctx, `
		SELECT id, event_type, actor, client_id, user_id, token_id, ray_id, detail, created_at
		FROM oauth_audit_log
		WHERE ray_id = ?
		ORDER BY created_at ASC, id ASC`,
		target)
	if err != nil {
		logger.Errorw("querying audit log", "ray_id", rayID, "error", err)
		return core.FailureOf[[]*core.AuditEntry](rayID, storage.CodeFetchFailed, "could not query audit log")
	}
	defer func() { _ = rows.Close() }()

	var entries []*core.AuditEntry
	for rows.Next() {
		var (
			entry    core.AuditEntry
			clientID sql.NullString
			userID   sql.NullString
			tokenID  sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.EventType,
			&entry.Actor,
			&clientID,
			&userID,
			&tokenID,
			&entry.RayID,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			logger.Errorw("scanning audit entry", "ray_id", rayID, "error", err)
			return core.FailureOf[[]*core.AuditEntry](rayID, storage.CodeFetchFailed, "could not read audit log")
		}
		entry.ClientID = clientID.String
		entry.UserID = userID.String
		entry.TokenID = tokenID.String
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		logger.Errorw("iterating audit entries", "ray_id", rayID, "error", err)
		return core.FailureOf[[]*core.AuditEntry](rayID, storage.CodeFetchFailed, "could not read audit log")
	}

	return core.SuccessOf(rayID, entries)
}
