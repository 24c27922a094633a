package repo_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"todosync/internal/db"
	"todosync/internal/domain"
	"todosync/internal/events"
	"todosync/internal/migrate"
	"todosync/internal/repo"
)

func newRepo(t *testing.T) (repo.Repo, context.Context) {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo.Repo{DB: conn}, context.Background()
}

func TestSyncTokenLifecycle(t *testing.T) {
	r, ctx := newRepo(t)
	if _, err := r.SyncToken(ctx); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected not found before first sync, got %v", err)
	}
	for _, tok := range []string{"tok-1", "tok-2"} {
		if err := r.SetSyncTokenTx(ctx, nil, tok); err != nil {
			t.Fatalf("set token: %v", err)
		}
	}
	if got, err := r.SyncToken(ctx); err != nil || got != "tok-2" {
		t.Fatalf("token = %q, %v", got, err)
	}
	if err := r.UpsertSnapshotTx(ctx, nil, domain.Snapshot{Resource: "items", ID: "1", Payload: `{"id":"1"}`}); err != nil {
		t.Fatal(err)
	}
	if err := r.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := r.SyncToken(ctx); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("reset should drop the token, got %v", err)
	}
	if rows, _ := r.ListSnapshots(ctx, repo.SnapshotFilters{}); len(rows) != 0 {
		t.Fatalf("reset should drop snapshots, got %d", len(rows))
	}
}

func TestMappings(t *testing.T) {
	r, ctx := newRepo(t)
	err := r.PutMappingsTx(ctx, nil, map[string]string{"tmp-a": "1", "tmp-b": "2"}, map[string]string{"tmp-a": "cmd-1"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, err := r.ResolveID(ctx, "tmp-b"); err != nil || got != "2" {
		t.Fatalf("resolve = %q, %v", got, err)
	}
	if _, err := r.ResolveID(ctx, "tmp-z"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	list, err := r.ListMappings(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list = %v, %v", list, err)
	}
	if list[0].TempID != "tmp-a" || list[0].CommandUUID != "cmd-1" || list[1].CommandUUID != "" {
		t.Fatalf("unexpected mappings %+v", list)
	}
}

func TestSnapshotsUpsertFilterAndClear(t *testing.T) {
	r, ctx := newRepo(t)
	rows := []domain.Snapshot{
		{Resource: "items", ID: "1", Payload: `{"id":"1","content":"a"}`},
		{Resource: "items", ID: "2", Payload: `{"id":"2"}`, IsDeleted: true},
		{Resource: "projects", ID: "p", Payload: `{"id":"p"}`, SyncToken: "tok"},
	}
	for _, s := range rows {
		if err := r.UpsertSnapshotTx(ctx, nil, s); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	if err := r.UpsertSnapshotTx(ctx, nil, domain.Snapshot{Resource: "items", ID: "1", Payload: `{"id":"1","content":"b"}`}); err != nil {
		t.Fatal(err)
	}
	got, err := r.GetSnapshot(ctx, "items", "1")
	if err != nil || !strings.Contains(got.Payload, `"b"`) {
		t.Fatalf("get = %+v, %v", got, err)
	}
	live, _ := r.ListSnapshots(ctx, repo.SnapshotFilters{Resource: "items"})
	all, _ := r.ListSnapshots(ctx, repo.SnapshotFilters{Resource: "items", IncludeDeleted: true})
	if len(live) != 1 || len(all) != 2 {
		t.Fatalf("live=%d all=%d", len(live), len(all))
	}
	counts, err := r.CountSnapshots(ctx)
	if err != nil || counts["items"] != 1 || counts["projects"] != 1 {
		t.Fatalf("counts = %v, %v", counts, err)
	}
	if err := r.ClearSnapshotsTx(ctx, nil, "items"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.GetSnapshot(ctx, "items", "1"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected cleared, got %v", err)
	}
	if err := r.UpsertSnapshotTx(ctx, nil, domain.Snapshot{Resource: "items"}); err == nil {
		t.Fatalf("expected error for snapshot without id")
	}
}

func TestRewriteReferences(t *testing.T) {
	r, ctx := newRepo(t)
	for _, s := range []domain.Snapshot{
		{Resource: "items", ID: "tmp-parent", Payload: `{"id":"tmp-parent"}`},
		{Resource: "items", ID: "child", Payload: `{"id":"child","parent_id":"tmp-parent","content":"tmp-parent-ish"}`},
		{Resource: "items", ID: "echo", Payload: `{"id":"echo","content":"tmp-parent","labels":["tmp-parent"]}`},
	} {
		if err := r.UpsertSnapshotTx(ctx, nil, s); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.RewriteReferencesTx(ctx, nil, "tmp-parent", "42"); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, err := r.GetSnapshot(ctx, "items", "tmp-parent"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("temp row should be rekeyed")
	}
	parent, err := r.GetSnapshot(ctx, "items", "42")
	if err != nil || payloadField(t, parent.Payload, "id") != "42" {
		t.Fatalf("parent = %+v, %v", parent, err)
	}
	child, _ := r.GetSnapshot(ctx, "items", "child")
	if payloadField(t, child.Payload, "parent_id") != "42" || payloadField(t, child.Payload, "content") != "tmp-parent-ish" {
		t.Fatalf("child = %s", child.Payload)
	}
	echo, _ := r.GetSnapshot(ctx, "items", "echo")
	if echo.Payload != `{"id":"echo","content":"tmp-parent","labels":["tmp-parent"]}` {
		t.Fatalf("plain string members must not be rewritten: %s", echo.Payload)
	}
}

func TestRewriteReferencesKeepsHTMLCharacters(t *testing.T) {
	r, ctx := newRepo(t)
	tmp := "tmp<a&b>"
	if err := r.UpsertSnapshotTx(ctx, nil, domain.Snapshot{Resource: "notes", ID: "n1", Payload: `{"id":"n1","item_id":"tmp<a&b>","uids_to_notify":["u<1>"]}`}); err != nil {
		t.Fatal(err)
	}
	if err := r.RewriteReferencesTx(ctx, nil, tmp, "real&1"); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	note, err := r.GetSnapshot(ctx, "notes", "n1")
	if err != nil {
		t.Fatal(err)
	}
	if payloadField(t, note.Payload, "item_id") != "real&1" {
		t.Fatalf("item_id not rewritten: %s", note.Payload)
	}
	if strings.Contains(note.Payload, `\u00`) {
		t.Fatalf("payload was HTML-escaped: %s", note.Payload)
	}
}

func payloadField(t *testing.T, payload, key string) string {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("decode %s: %v", payload, err)
	}
	s, _ := doc[key].(string)
	return s
}

func TestLatestEvents(t *testing.T) {
	r, ctx := newRepo(t)
	w := events.Writer{DB: r.DB}
	for i, typ := range []string{events.TypeSync, events.TypeSyncError, events.TypeSync} {
		if err := w.Append(ctx, nil, events.Entry{Type: typ, SyncToken: "tok", FullSync: i == 0, Commands: i, Resources: []string{"items", "user"}}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got, err := r.LatestEvents(ctx, 10, 0, "")
	if err != nil || len(got) != 3 {
		t.Fatalf("events = %v, %v", got, err)
	}
	if got[0].Commands != 2 || !got[2].FullSync || got[0].Resources != "items,user" || got[0].Payload != "{}" {
		t.Fatalf("unexpected order or fields %+v", got)
	}
	older, _ := r.LatestEvents(ctx, 10, got[0].ID, events.TypeSync)
	if len(older) != 1 || older[0].ID != got[2].ID {
		t.Fatalf("cursor/type filter = %+v", older)
	}
}
