// Package devserver serves an in-memory sync endpoint for local development
// and integration tests. It applies a subset of commands and acknowledges
// the rest with an error status.
package devserver

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"todosync/internal/syncproto"
)

// Config for the dev sync handler.
type Config struct {
	Auth   AuthConfig
	State  *State
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

type apiErrorBody struct {
	Code    string         `json:"code" example:"bad_request"`
	Message string         `json:"message" example:"commands[0].uuid is required"`
	Details map[string]any `json:"details,omitempty" jsonschema:"type=object,additionalProperties=true"`
}

// apiError models the error envelope.
type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

// New returns an HTTP handler exposing the sync endpoint.
func New(cfg Config) (http.Handler, error) {
	if cfg.State == nil {
		cfg.State = NewState()
	}
	huma.DefaultArrayNullable = false
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		var details map[string]any
		if len(errs) > 0 {
			details = map[string]any{"errors": errs}
		}
		return newAPIError(status, "", msg, details)
	}

	router := chi.NewRouter()
	router.Use(requestLogger(cfg.logger()))
	if cfg.Auth.Logger == nil {
		cfg.Auth.Logger = cfg.Logger
	}
	router.Use(newAuthMiddleware(cfg.Auth))
	hcfg := huma.DefaultConfig("todosync dev server", "0.1.0")
	hcfg.OpenAPIPath = "/openapi"
	hcfg.DocsPath = ""
	api := humachi.New(router, hcfg)

	registerHealth(api)
	registerSync(api, cfg.State, cfg.logger())
	return router, nil
}

func newAPIError(status int, code, message string, details map[string]any) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{
		status: status,
		Body: apiErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerSync(api huma.API, st *State, log *slog.Logger) {
	huma.Register(api, huma.Operation{
		OperationID: "sync",
		Method:      http.MethodPost,
		Path:        "/sync",
		Summary:     "Apply commands and read resources",
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusInternalServerError,
		},
	}, func(ctx context.Context, input *struct {
		Body SyncRequest `json:"body"`
	}) (*struct {
		Body syncproto.Response `json:"body"`
	}, error) {
		for i, c := range input.Body.Commands {
			if c.UUID == "" {
				return nil, newAPIError(http.StatusBadRequest, "bad_request", "commands["+itoa(i)+"].uuid is required", nil)
			}
			if c.Type == "" {
				return nil, newAPIError(http.StatusBadRequest, "bad_request", "commands["+itoa(i)+"].type is required", nil)
			}
		}
		resp, err := st.Sync(input.Body)
		if err != nil {
			return nil, newAPIError(http.StatusBadRequest, "bad_request", err.Error(), nil)
		}
		log.Info("sync",
			"commands", len(input.Body.Commands),
			"resources", strings.Join(input.Body.ResourceTypes, ","),
			"full_sync", resp.FullSync,
		)
		return &struct {
			Body syncproto.Response `json:"body"`
		}{Body: resp}, nil
	})
}
