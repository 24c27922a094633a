package devserver

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"todosync/internal/command"
	"todosync/internal/syncproto"
)

type testServer struct {
	URL    string
	client *http.Client
	close  func()
}

func (s *testServer) Client() *http.Client { return s.client }
func (s *testServer) Close()               { s.close() }

func newTestServer(t *testing.T, auth AuthConfig) (*testServer, func()) {
	t.Helper()
	handler, err := New(Config{Auth: auth, State: NewState()})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	testSrv := &testServer{
		URL:    "http://" + ln.Addr().String(),
		client: &http.Client{},
		close: func() {
			srv.Shutdown(context.Background())
			ln.Close()
		},
	}
	return testSrv, func() { testSrv.Close() }
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, data
}

func syncOnce(t *testing.T, srv *testServer, req syncproto.Request, headers map[string]string) syncproto.Response {
	t.Helper()
	res, data := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/sync", req, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("sync status %d: %s", res.StatusCode, string(data))
	}
	var out syncproto.Response
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	srv, cleanup := newTestServer(t, AuthConfig{Token: "secret"})
	defer cleanup()
	res, body := doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/health", nil, nil)
	if res.StatusCode != http.StatusOK || !strings.Contains(string(body), "ok") {
		t.Fatalf("health: %d %s", res.StatusCode, string(body))
	}
}

func TestSyncOverHTTPResolvesTempIDs(t *testing.T) {
	srv, cleanup := newTestServer(t, AuthConfig{})
	defer cleanup()

	b := command.NewBuilder()
	batch := syncproto.NewBatch()
	addProject, _ := b.Build(command.ProjectAdd, command.ProjectAddArgs{Name: "Home", Color: command.Ptr(30)}, command.WithTempID("tmp-project"))
	addTask, _ := b.Build(command.ItemAdd, command.ItemAddArgs{Content: "Paint fence", ProjectID: "tmp-project"}, command.WithTempID("tmp-task"))
	if err := batch.Add(addProject, addTask); err != nil {
		t.Fatal(err)
	}
	if err := batch.Want("projects", "items"); err != nil {
		t.Fatal(err)
	}

	resp := syncOnce(t, srv, batch.Request(), nil)
	for _, c := range batch.Commands() {
		if st, ok := resp.Status(c.ID()); !ok || !st.IsOK() {
			t.Fatalf("%s not acknowledged: %+v", c.Type(), st)
		}
	}
	projectID, ok := resp.TempIDMapping.Lookup("tmp-project")
	if !ok {
		t.Fatalf("no mapping for project: %v", resp.TempIDMapping)
	}
	raw, _ := resp.Resource("items")
	if !strings.Contains(string(raw), `"project_id":"`+projectID+`"`) {
		t.Fatalf("task should reference the permanent project id: %s", raw)
	}
	if !resp.FullSync || !strings.HasPrefix(resp.SyncToken, tokenPrefix) {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestSyncRejectsUnknownResourceType(t *testing.T) {
	srv, cleanup := newTestServer(t, AuthConfig{})
	defer cleanup()
	res, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/sync", map[string]any{
		"sync_token":     "*",
		"resource_types": []string{"items", "gadgets"},
	}, nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", res.StatusCode, string(body))
	}
}

func TestSyncRequiresCredentials(t *testing.T) {
	srv, cleanup := newTestServer(t, AuthConfig{Token: "secret", JWTSecret: "jwt-secret"})
	defer cleanup()
	req := syncproto.NewBatch().Request()

	res, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/sync", req, nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d %s", res.StatusCode, string(body))
	}
	res, _ = doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/sync", req, map[string]string{"Authorization": "Bearer wrong"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", res.StatusCode)
	}
	syncOnce(t, srv, req, map[string]string{"Authorization": "Bearer secret"})

	token, err := MintToken("jwt-secret", "dev", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	syncOnce(t, srv, req, map[string]string{"Authorization": "Bearer " + token})

	expired, _ := MintToken("jwt-secret", "dev", time.Minute, time.Now().Add(-time.Hour))
	res, _ = doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/sync", req, map[string]string{"Authorization": "Bearer " + expired})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", res.StatusCode)
	}
}

func TestMintTokenRequiresSecretAndSubject(t *testing.T) {
	if _, err := MintToken("", "dev", 0, time.Now()); err == nil {
		t.Fatalf("expected error without secret")
	}
	if _, err := MintToken("s", " ", 0, time.Now()); err == nil {
		t.Fatalf("expected error without subject")
	}
}
