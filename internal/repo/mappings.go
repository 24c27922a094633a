package repo

import (
	"context"
	"database/sql"
	"sort"

	"todosync/internal/domain"
)

// PutMappingsTx records temp → real id pairs. commandUUIDs maps a temp id to
// the command that introduced it and may be nil.
func (r Repo) PutMappingsTx(ctx context.Context, tx *sql.Tx, mapping map[string]string, commandUUIDs map[string]string) error {
	tempIDs := make([]string, 0, len(mapping))
	for k := range mapping {
		tempIDs = append(tempIDs, k)
	}
	sort.Strings(tempIDs)
	ts := now()
	for _, tempID := range tempIDs {
		if _, err := r.conn(tx).ExecContext(ctx, `INSERT INTO id_mappings(temp_id,real_id,command_uuid,created_at) VALUES (?,?,?,?)
ON CONFLICT(temp_id) DO UPDATE SET real_id=excluded.real_id, command_uuid=excluded.command_uuid`,
			tempID, mapping[tempID], nullable(commandUUIDs[tempID]), ts); err != nil {
			return err
		}
	}
	return nil
}

// ResolveID returns the permanent id recorded for a temp id, or ErrNotFound.
func (r Repo) ResolveID(ctx context.Context, tempID string) (string, error) {
	var real string
	err := r.DB.QueryRowContext(ctx, `SELECT real_id FROM id_mappings WHERE temp_id=?`, tempID).Scan(&real)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return real, err
}

func (r Repo) ListMappings(ctx context.Context) ([]domain.Mapping, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT temp_id,real_id,COALESCE(command_uuid,''),created_at FROM id_mappings ORDER BY created_at, temp_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Mapping
	for rows.Next() {
		var m domain.Mapping
		if err := rows.Scan(&m.TempID, &m.RealID, &m.CommandUUID, &m.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}
