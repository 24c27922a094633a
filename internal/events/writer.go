package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Journal event types.
const (
	TypeSync      = "sync.completed"
	TypeSyncError = "sync.failed"
	TypeReset     = "sync.reset"
)

type Writer struct {
	DB  *sql.DB
	Now func() time.Time
}

type EventPayload map[string]any

// Entry summarises one round-trip.
type Entry struct {
	Type      string
	SyncToken string
	FullSync  bool
	Commands  int
	Failed    int
	Resources []string
	Payload   EventPayload
}

func (w Writer) Append(ctx context.Context, tx *sql.Tx, e Entry) error {
	if w.Now == nil {
		w.Now = time.Now
	}
	ts := w.Now().UTC().Format(time.RFC3339)
	if e.Payload == nil {
		e.Payload = EventPayload{}
	}
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	full := 0
	if e.FullSync {
		full = 1
	}
	query := `INSERT INTO events(ts,type,sync_token,full_sync,commands,failed,resources,payload_json) VALUES (?,?,?,?,?,?,?,?)`
	args := []any{ts, e.Type, nullable(e.SyncToken), full, e.Commands, e.Failed, strings.Join(e.Resources, ","), string(data)}
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = w.DB.ExecContext(ctx, query, args...)
	}
	return err
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
