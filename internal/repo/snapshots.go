package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/domain"
)

func (r Repo) UpsertSnapshotTx(ctx context.Context, tx *sql.Tx, s domain.Snapshot) error {
	if s.Resource == "" || s.ID == "" {
		return fmt.Errorf("snapshot needs resource and id")
	}
	if s.UpdatedAt == "" {
		s.UpdatedAt = now()
	}
	_, err := r.conn(tx).ExecContext(ctx, `INSERT INTO snapshots(resource,id,payload_json,is_deleted,sync_token,updated_at) VALUES (?,?,?,?,?,?)
ON CONFLICT(resource,id) DO UPDATE SET payload_json=excluded.payload_json, is_deleted=excluded.is_deleted,
sync_token=excluded.sync_token, updated_at=excluded.updated_at`,
		s.Resource, s.ID, s.Payload, boolInt(s.IsDeleted), nullable(s.SyncToken), s.UpdatedAt)
	return err
}

// ClearSnapshotsTx removes every cached row of one resource type ahead of a
// full sync replacing it.
func (r Repo) ClearSnapshotsTx(ctx context.Context, tx *sql.Tx, resource string) error {
	_, err := r.conn(tx).ExecContext(ctx, `DELETE FROM snapshots WHERE resource=?`, resource)
	return err
}

func (r Repo) GetSnapshot(ctx context.Context, resource, id string) (domain.Snapshot, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT resource,id,payload_json,is_deleted,COALESCE(sync_token,''),updated_at FROM snapshots WHERE resource=? AND id=?`, resource, id)
	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

type SnapshotFilters struct {
	Resource       string
	IncludeDeleted bool
	Limit          int
}

func (r Repo) ListSnapshots(ctx context.Context, f SnapshotFilters) ([]domain.Snapshot, error) {
	clauses := []string{"1=1"}
	var args []any
	if f.Resource != "" {
		clauses = append(clauses, "resource=?")
		args = append(args, f.Resource)
	}
	if !f.IncludeDeleted {
		clauses = append(clauses, "is_deleted=0")
	}
	query := `SELECT resource,id,payload_json,is_deleted,COALESCE(sync_token,''),updated_at FROM snapshots WHERE ` +
		strings.Join(clauses, " AND ") + ` ORDER BY resource, rowid`
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// CountSnapshots returns live rows per resource type.
func (r Repo) CountSnapshots(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT resource, COUNT(*) FROM snapshots WHERE is_deleted=0 GROUP BY resource`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := map[string]int{}
	for rows.Next() {
		var (
			resource string
			n        int
		)
		if err := rows.Scan(&resource, &n); err != nil {
			return nil, err
		}
		res[resource] = n
	}
	return res, rows.Err()
}

// RewriteReferencesTx replaces a temp id with its permanent id in cached
// rows: as a row key and as the value of reference members ("id", "*_id",
// "*_ids", "*_uid", "*_uids"). Other string members are left alone.
func (r Repo) RewriteReferencesTx(ctx context.Context, tx *sql.Tx, tempID, realID string) error {
	if tempID == "" || realID == "" || tempID == realID {
		return nil
	}
	c := r.conn(tx)
	if _, err := c.ExecContext(ctx, `DELETE FROM snapshots WHERE id=? AND resource IN (SELECT resource FROM snapshots WHERE id=?)`, realID, tempID); err != nil {
		return err
	}
	if _, err := c.ExecContext(ctx, `UPDATE snapshots SET id=? WHERE id=?`, realID, tempID); err != nil {
		return err
	}

	type row struct{ resource, id, payload string }
	rows, err := c.QueryContext(ctx, `SELECT resource, id, payload_json FROM snapshots WHERE instr(payload_json,?)>0 OR instr(payload_json,?)>0`,
		tempID, escaped(tempID))
	if err != nil {
		return err
	}
	var hits []row
	for rows.Next() {
		var h row
		if err := rows.Scan(&h.resource, &h.id, &h.payload); err != nil {
			rows.Close()
			return err
		}
		hits = append(hits, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, h := range hits {
		out, changed, err := rewritePayload(h.payload, tempID, realID)
		if err != nil {
			return fmt.Errorf("rewrite %s %s: %w", h.resource, h.id, err)
		}
		if !changed {
			continue
		}
		if _, err := c.ExecContext(ctx, `UPDATE snapshots SET payload_json=? WHERE resource=? AND id=?`, out, h.resource, h.id); err != nil {
			return err
		}
	}
	return nil
}

// payloadJSON re-encodes rewritten payloads without HTML escaping so ids
// keep the exact bytes the server sent.
var payloadJSON = jsoniter.Config{EscapeHTML: false, SortMapKeys: true, UseNumber: true}.Froze()

func rewritePayload(payload, tempID, realID string) (string, bool, error) {
	var doc map[string]any
	if err := payloadJSON.UnmarshalFromString(payload, &doc); err != nil {
		return "", false, err
	}
	if !rewriteRefs(doc, tempID, realID) {
		return payload, false, nil
	}
	out, err := payloadJSON.MarshalToString(doc)
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

func rewriteRefs(doc map[string]any, tempID, realID string) bool {
	changed := false
	for k, v := range doc {
		switch val := v.(type) {
		case string:
			if val == tempID && isReference(k) {
				doc[k] = realID
				changed = true
			}
		case []any:
			if !isReference(k) {
				continue
			}
			for i, e := range val {
				if s, ok := e.(string); ok && s == tempID {
					val[i] = realID
					changed = true
				}
			}
		case map[string]any:
			if rewriteRefs(val, tempID, realID) {
				changed = true
			}
		}
	}
	return changed
}

func isReference(key string) bool {
	if key == "id" {
		return true
	}
	for _, suffix := range []string{"_id", "_ids", "_uid", "_uids"} {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// escaped is s as an HTML-escaping encoder writes it inside a JSON string.
func escaped(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (domain.Snapshot, error) {
	var (
		s       domain.Snapshot
		deleted int
	)
	if err := row.Scan(&s.Resource, &s.ID, &s.Payload, &deleted, &s.SyncToken, &s.UpdatedAt); err != nil {
		return s, err
	}
	s.IsDeleted = deleted != 0
	return s, nil
}
