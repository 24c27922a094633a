package engine_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/command"
	"todosync/internal/config"
	"todosync/internal/db"
	"todosync/internal/devserver"
	"todosync/internal/domain"
	"todosync/internal/engine"
	"todosync/internal/events"
	"todosync/internal/migrate"
	"todosync/internal/resource"
	"todosync/internal/response"
	"todosync/internal/syncproto"
	todosyncsdk "todosync/sdk/go"
)

type testEnv struct {
	Engine engine.Engine
	Ctx    context.Context
}

func newTestEnv(t *testing.T, transport engine.Transport) testEnv {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	eng := engine.New(conn, config.Default(config.DefaultBaseURL), transport)
	eng.Now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return testEnv{Engine: eng, Ctx: context.Background()}
}

// startDevServer serves an in-memory account on a loopback listener.
func startDevServer(t *testing.T) *todosyncsdk.Client {
	t.Helper()
	handler, err := devserver.New(devserver.Config{Auth: devserver.AuthConfig{Token: "secret"}, State: devserver.NewState()})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	t.Cleanup(func() {
		srv.Shutdown(context.Background())
		ln.Close()
	})
	return todosyncsdk.New("http://"+ln.Addr().String(), "secret")
}

type stubTransport struct {
	resp syncproto.Response
	err  error
	reqs []syncproto.Request
}

func (s *stubTransport) Sync(_ context.Context, req syncproto.Request) (syncproto.Response, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func cachedTasks(t *testing.T, env testEnv) []domain.Task {
	t.Helper()
	v, err := env.Engine.Cached(env.Ctx, resource.Items)
	if err != nil {
		t.Fatalf("cached items: %v", err)
	}
	return v.([]domain.Task)
}

func TestFirstSyncIsFullAndPersistsToken(t *testing.T) {
	env := newTestEnv(t, startDevServer(t))
	res, err := env.Engine.Sync(env.Ctx)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !res.Response.FullSync {
		t.Fatalf("first sync should be full")
	}
	token, err := env.Engine.Repo.SyncToken(env.Ctx)
	if err != nil || token != res.Response.SyncToken {
		t.Fatalf("token = %q, %v", token, err)
	}
	projects, ok := res.Resources[resource.Projects].([]domain.Project)
	if !ok || len(projects) != 1 || projects[0].Name != "Inbox" {
		t.Fatalf("projects = %#v", res.Resources[resource.Projects])
	}
	user, err := env.Engine.Cached(env.Ctx, resource.User)
	if err != nil || user.(domain.User).InboxProjectID != projects[0].ID {
		t.Fatalf("cached user = %#v, %v", user, err)
	}
	journal, _ := env.Engine.Repo.LatestEvents(env.Ctx, 10, 0, "")
	if len(journal) != 1 || journal[0].Type != events.TypeSync || !journal[0].FullSync {
		t.Fatalf("journal = %+v", journal)
	}

	second, err := env.Engine.Sync(env.Ctx)
	if err != nil {
		t.Fatal(err)
	}
	if second.Response.FullSync {
		t.Fatalf("second sync should be incremental")
	}
}

func TestSyncResolvesTempIDsAndCachesSnapshots(t *testing.T) {
	env := newTestEnv(t, startDevServer(t))
	project, err := env.Engine.Build(command.ProjectAdd, command.ProjectAddArgs{Name: "Errands"}, command.WithTempID("tmp-project"))
	if err != nil {
		t.Fatal(err)
	}
	task, err := env.Engine.Build(command.ItemAdd, command.ItemAddArgs{Content: "Post letter", ProjectID: "tmp-project"}, command.WithTempID("tmp-task"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := env.Engine.Sync(env.Ctx, project, task)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(res.Failed) != 0 {
		t.Fatalf("unexpected failures %v", res.Failed)
	}
	projectID, err := env.Engine.ResolveID(env.Ctx, "tmp-project")
	if err != nil || projectID == "tmp-project" {
		t.Fatalf("resolve = %q, %v", projectID, err)
	}
	if id, _ := env.Engine.ResolveID(env.Ctx, "already-real"); id != "already-real" {
		t.Fatalf("unmapped ids pass through, got %q", id)
	}
	tasks := cachedTasks(t, env)
	if len(tasks) != 1 || tasks[0].ProjectID != projectID {
		t.Fatalf("cached tasks = %+v", tasks)
	}
	mappings, _ := env.Engine.Repo.ListMappings(env.Ctx)
	if len(mappings) != 2 || mappings[0].CommandUUID == "" {
		t.Fatalf("mappings = %+v", mappings)
	}

	taskID, _ := env.Engine.ResolveID(env.Ctx, "tmp-task")
	del := command.MustNew(command.ItemDeleteArgs{ID: taskID})
	if _, err := env.Engine.Sync(env.Ctx, del); err != nil {
		t.Fatal(err)
	}
	if got := cachedTasks(t, env); len(got) != 0 {
		t.Fatalf("deleted task should leave the cache, got %+v", got)
	}
}

func TestSyncReportsCommandFailures(t *testing.T) {
	env := newTestEnv(t, startDevServer(t))
	bad := command.MustNew(command.ItemCloseArgs{ID: "missing"})
	res, err := env.Engine.Sync(env.Ctx, bad)
	if err != nil {
		t.Fatalf("per-command failures are not transport errors: %v", err)
	}
	if len(res.Failed) != 1 || !errors.Is(res.Failed[0], syncproto.ErrCommandFailed) {
		t.Fatalf("failed = %v", res.Failed)
	}
	journal, _ := env.Engine.Repo.LatestEvents(env.Ctx, 1, 0, events.TypeSync)
	if len(journal) != 1 || journal[0].Failed != 1 {
		t.Fatalf("journal = %+v", journal)
	}
}

func TestTransportErrorPersistsNothing(t *testing.T) {
	stub := &stubTransport{err: &todosyncsdk.APIError{StatusCode: 503, Body: "down"}}
	env := newTestEnv(t, stub)
	if err := env.Engine.Repo.SetSyncTokenTx(env.Ctx, nil, "tok-1"); err != nil {
		t.Fatal(err)
	}
	_, err := env.Engine.Sync(env.Ctx, command.MustNew(command.ItemCloseArgs{ID: "1"}))
	var apiErr *todosyncsdk.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
	if stub.reqs[0].SyncToken != "tok-1" || len(stub.reqs[0].ResourceTypes) != 1 || stub.reqs[0].ResourceTypes[0] != resource.All {
		t.Fatalf("request = %+v", stub.reqs[0])
	}
	if tok, _ := env.Engine.Repo.SyncToken(env.Ctx); tok != "tok-1" {
		t.Fatalf("token changed to %q", tok)
	}
	journal, _ := env.Engine.Repo.LatestEvents(env.Ctx, 10, 0, "")
	if len(journal) != 1 || journal[0].Type != events.TypeSyncError {
		t.Fatalf("journal = %+v", journal)
	}
}

func TestInvalidPayloadPersistsNothing(t *testing.T) {
	stub := &stubTransport{resp: syncproto.Response{
		SyncToken: "tok-2",
		FullSync:  true,
		Resources: map[resource.Type]jsoniter.RawMessage{
			resource.Items: jsoniter.RawMessage(`[{"id":"1","project_id":"p"}]`),
		},
	}}
	env := newTestEnv(t, stub)
	_, err := env.Engine.Sync(env.Ctx)
	if !errors.Is(err, response.ErrShapeInvalid) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if _, err := env.Engine.Repo.SyncToken(env.Ctx); err == nil {
		t.Fatalf("token should not be stored after a rejected payload")
	}
	rows, _ := env.Engine.Repo.CountSnapshots(env.Ctx)
	if len(rows) != 0 {
		t.Fatalf("snapshots stored: %v", rows)
	}
}

func TestUnshapedResourcesAreNotCached(t *testing.T) {
	stub := &stubTransport{resp: syncproto.Response{
		SyncToken: "tok-3",
		Resources: map[resource.Type]jsoniter.RawMessage{
			resource.Stats: jsoniter.RawMessage(`{"completed_count":4}`),
		},
	}}
	env := newTestEnv(t, stub)
	res, err := env.Engine.Sync(env.Ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Unchecked) != 1 || res.Unchecked[0] != resource.Stats {
		t.Fatalf("unchecked = %v", res.Unchecked)
	}
	if _, err := env.Engine.Cached(env.Ctx, resource.Stats); !errors.Is(err, resource.ErrUnknownSelector) {
		t.Fatalf("expected unknown shape, got %v", err)
	}
}

func TestReset(t *testing.T) {
	env := newTestEnv(t, startDevServer(t))
	if _, err := env.Engine.Sync(env.Ctx); err != nil {
		t.Fatal(err)
	}
	if err := env.Engine.Reset(env.Ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	res, err := env.Engine.Sync(env.Ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Response.FullSync {
		t.Fatalf("sync after reset should be full")
	}
}
