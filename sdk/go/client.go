package todosyncsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"todosync/internal/resource"
	"todosync/internal/syncproto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TracerName names the tracer used when Client.Tracer is nil.
const TracerName = "todosync/transport"

// Client posts sync batches to a sync endpoint.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
	Tracer     trace.Tracer
}

// New creates a client with sane defaults.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Timeout: 10 * time.Second,
	}
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Sync sends one batch and decodes the response envelope. Resource payloads
// are returned raw. It never retries.
func (c *Client) Sync(ctx context.Context, req syncproto.Request) (syncproto.Response, error) {
	ctx, span := c.tracer().Start(ctx, "sync", trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(
		attribute.Int("sync.commands", len(req.Commands)),
		attribute.StringSlice("sync.resource_types", resource.Strings(req.ResourceTypes)),
		attribute.Bool("sync.full", req.Token() == syncproto.FullSync),
	))
	defer span.End()

	var resp syncproto.Response
	if err := c.do(ctx, http.MethodPost, "sync", req, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return syncproto.Response{}, err
	}
	span.SetAttributes(
		attribute.Bool("sync.full_sync", resp.FullSync),
		attribute.Int("sync.temp_ids", len(resp.TempIDMapping)),
	)
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) tracer() trace.Tracer {
	if c.Tracer != nil {
		return c.Tracer
	}
	return otel.Tracer(TracerName)
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
