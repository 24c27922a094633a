package todosyncsdk_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"todosync/internal/command"
	"todosync/internal/devserver"
	"todosync/internal/resource"
	"todosync/internal/syncproto"
	todosyncsdk "todosync/sdk/go"
)

func newServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	h, err := devserver.New(devserver.Config{Auth: devserver.AuthConfig{Token: token}, State: devserver.NewState()})
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func newTracedClient(url, token string) (*todosyncsdk.Client, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	c := todosyncsdk.New(url, token)
	c.Tracer = tp.Tracer(todosyncsdk.TracerName)
	return c, rec
}

func TestSyncRoundTrip(t *testing.T) {
	srv := newServer(t, "secret")
	client, rec := newTracedClient(srv.URL+"/", "secret")

	batch := syncproto.NewBatch()
	require.NoError(t, batch.Add(command.MustNew(command.ItemAddArgs{Content: "Water plants"}, command.WithTempID("tmp-1"))))
	require.NoError(t, batch.Want(resource.Items))

	resp, err := client.Sync(context.Background(), batch.Request())
	require.NoError(t, err)
	assert.True(t, resp.FullSync)
	assert.NotEmpty(t, resp.SyncToken)
	assert.Empty(t, resp.Errors(batch.Commands()))
	id, ok := resp.TempIDMapping.Lookup("tmp-1")
	require.True(t, ok)
	raw, ok := resp.Resource(resource.Items)
	require.True(t, ok)
	assert.Contains(t, string(raw), id)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sync", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	attrs := map[string]any{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, int64(1), attrs["sync.commands"])
	assert.Equal(t, true, attrs["sync.full"])
	assert.Equal(t, int64(1), attrs["sync.temp_ids"])
}

func TestSyncReportsAPIError(t *testing.T) {
	srv := newServer(t, "secret")
	client, rec := newTracedClient(srv.URL, "wrong")

	_, err := client.Sync(context.Background(), syncproto.NewBatch().Request())
	var apiErr *todosyncsdk.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid_credentials")

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.NotEmpty(t, spans[0].Events(), "error should be recorded on the span")
}

func TestSyncSurfacesCommandFailures(t *testing.T) {
	srv := newServer(t, "")
	client := todosyncsdk.New(srv.URL, "")

	ok := command.MustNew(command.ProjectAddArgs{Name: "Garden"})
	bad := command.MustNew(command.ItemCloseArgs{ID: "item-404"})
	batch := syncproto.NewBatch()
	require.NoError(t, batch.Add(ok, bad))

	resp, err := client.Sync(context.Background(), batch.Request())
	require.NoError(t, err)
	errs := resp.Errors(batch.Commands())
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], syncproto.ErrCommandFailed)
	var ce *syncproto.CommandError
	require.ErrorAs(t, errs[0], &ce)
	assert.Equal(t, 22, ce.Code)
	assert.Equal(t, bad.ID(), ce.UUID)
}

func TestConcurrentSyncOnZeroValueClient(t *testing.T) {
	srv := newServer(t, "secret")
	client := &todosyncsdk.Client{BaseURL: srv.URL, Token: "secret"}

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Sync(context.Background(), syncproto.NewBatch().Request())
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Nil(t, client.HTTPClient, "Sync must not mutate the client")
}
