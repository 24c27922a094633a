package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/command"
	"todosync/internal/config"
	"todosync/internal/domain"
	"todosync/internal/events"
	"todosync/internal/repo"
	"todosync/internal/resource"
	"todosync/internal/response"
	"todosync/internal/syncproto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Transport sends one batch and returns the decoded envelope.
type Transport interface {
	Sync(ctx context.Context, req syncproto.Request) (syncproto.Response, error)
}

type Engine struct {
	DB        *sql.DB
	Repo      repo.Repo
	Events    events.Writer
	Config    *config.Config
	Transport Transport
	Builder   command.Builder
	Logger    *slog.Logger
	Now       func() time.Time
}

func New(db *sql.DB, cfg *config.Config, transport Transport) Engine {
	return Engine{
		DB:        db,
		Repo:      repo.Repo{DB: db},
		Events:    events.Writer{DB: db},
		Config:    cfg,
		Transport: transport,
		Builder:   command.NewBuilder(),
		Now:       time.Now,
	}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Result is the outcome of one round-trip.
type Result struct {
	Response syncproto.Response
	// Failed holds one error per command the server did not acknowledge as
	// ok, in batch order.
	Failed []error
	// Resources holds the validated, narrowed payload per resource type.
	Resources map[resource.Type]any
	// Unchecked lists returned resource types that have no shape; they are
	// neither validated nor cached.
	Unchecked []resource.Type
}

// Build creates a command with the engine's id source.
func (e Engine) Build(name command.Type, args command.Args, opts ...command.Option) (command.Command, error) {
	return e.Builder.Build(name, args, opts...)
}

// Sync sends cmds with the stored sync token and the configured resource
// types, validates every returned resource and persists the new token,
// identifier mapping and snapshots in one transaction. Nothing is
// persisted when the transport fails or a payload is rejected.
func (e Engine) Sync(ctx context.Context, cmds ...command.Command) (Result, error) {
	if e.Transport == nil {
		return Result{}, errors.New("transport not configured")
	}
	token, err := e.Repo.SyncToken(ctx)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Result{}, fmt.Errorf("read sync token: %w", err)
	}
	batch := syncproto.NewBatch()
	batch.SetSyncToken(token)
	if err := batch.Want(e.resourceTypes()...); err != nil {
		return Result{}, fmt.Errorf("sync: %w", err)
	}
	if err := batch.Add(cmds...); err != nil {
		return Result{}, err
	}
	req := batch.Request()

	resp, err := e.Transport.Sync(ctx, req)
	if err != nil {
		e.journalFailure(ctx, req, err)
		return Result{}, fmt.Errorf("sync: %w", err)
	}

	res := Result{Response: resp, Resources: map[resource.Type]any{}}
	for _, t := range resp.ResourceTypes() {
		raw, _ := resp.Resource(t)
		if !response.HasShape(t) {
			res.Unchecked = append(res.Unchecked, t)
			continue
		}
		v, err := response.Validate(t, raw)
		if err != nil {
			e.journalFailure(ctx, req, err)
			return Result{}, err
		}
		res.Resources[t] = v
	}
	res.Failed = resp.Errors(batch.Commands())

	if err := e.persist(ctx, batch, resp, len(res.Failed)); err != nil {
		return Result{}, err
	}
	e.logger().Info("sync",
		"commands", batch.Len(),
		"resources", resource.Strings(resp.ResourceTypes()),
		"full_sync", resp.FullSync,
		"failed", len(res.Failed),
	)
	return res, nil
}

func (e Engine) resourceTypes() []resource.Type {
	if e.Config == nil {
		return []resource.Type{resource.All}
	}
	return e.Config.ResourceTypes()
}

func (e Engine) journalEnabled() bool {
	return e.Config == nil || e.Config.JournalEnabled()
}

func (e Engine) persist(ctx context.Context, batch *syncproto.Batch, resp syncproto.Response, failed int) error {
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	introducedBy := map[string]string{}
	for _, c := range batch.Commands() {
		if tempID, ok := c.TempID(); ok {
			introducedBy[tempID] = c.ID()
		}
	}
	if err := e.Repo.PutMappingsTx(ctx, tx, resp.TempIDMapping, introducedBy); err != nil {
		return fmt.Errorf("store id mapping: %w", err)
	}
	tempIDs := make([]string, 0, len(resp.TempIDMapping))
	for tempID := range resp.TempIDMapping {
		tempIDs = append(tempIDs, tempID)
	}
	sort.Strings(tempIDs)
	for _, tempID := range tempIDs {
		if err := e.Repo.RewriteReferencesTx(ctx, tx, tempID, resp.TempIDMapping[tempID]); err != nil {
			return fmt.Errorf("rewrite %s: %w", tempID, err)
		}
	}

	stamp := e.now().UTC().Format(time.RFC3339)
	for _, t := range resp.ResourceTypes() {
		if !response.HasShape(t) {
			continue
		}
		raw, _ := resp.Resource(t)
		if resp.FullSync {
			if err := e.Repo.ClearSnapshotsTx(ctx, tx, string(t)); err != nil {
				return err
			}
		}
		rows, err := snapshots(t, raw)
		if err != nil {
			return err
		}
		for _, s := range rows {
			s.SyncToken = resp.SyncToken
			s.UpdatedAt = stamp
			if err := e.Repo.UpsertSnapshotTx(ctx, tx, s); err != nil {
				return fmt.Errorf("store %s %s: %w", t, s.ID, err)
			}
		}
	}
	if resp.SyncToken != "" {
		if err := e.Repo.SetSyncTokenTx(ctx, tx, resp.SyncToken); err != nil {
			return fmt.Errorf("store sync token: %w", err)
		}
	}
	if e.journalEnabled() {
		entry := events.Entry{
			Type:      events.TypeSync,
			SyncToken: resp.SyncToken,
			FullSync:  resp.FullSync,
			Commands:  batch.Len(),
			Failed:    failed,
			Resources: resource.Strings(resp.ResourceTypes()),
			Payload:   events.EventPayload{"temp_ids": len(resp.TempIDMapping)},
		}
		if err := e.Events.Append(ctx, tx, entry); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
	}
	return tx.Commit()
}

// snapshots splits a validated payload into one row per entity.
func snapshots(t resource.Type, raw []byte) ([]domain.Snapshot, error) {
	var elems []jsoniter.RawMessage
	if jsoniter.Get(raw).ValueType() == jsoniter.ArrayValue {
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
	} else {
		elems = []jsoniter.RawMessage{raw}
	}
	out := make([]domain.Snapshot, 0, len(elems))
	for _, el := range elems {
		id := jsoniter.Get(el, "id").ToString()
		if id == "" {
			continue
		}
		out = append(out, domain.Snapshot{
			Resource:  string(t),
			ID:        id,
			Payload:   string(el),
			IsDeleted: jsoniter.Get(el, "is_deleted").ToBool(),
		})
	}
	return out, nil
}

func (e Engine) journalFailure(ctx context.Context, req syncproto.Request, cause error) {
	if !e.journalEnabled() {
		return
	}
	entry := events.Entry{
		Type:      events.TypeSyncError,
		SyncToken: req.SyncToken,
		FullSync:  req.Token() == syncproto.FullSync,
		Commands:  len(req.Commands),
		Failed:    len(req.Commands),
		Resources: resource.Strings(req.ResourceTypes),
		Payload:   events.EventPayload{"error": cause.Error()},
	}
	if err := e.Events.Append(ctx, nil, entry); err != nil {
		e.logger().Warn("journal sync failure", "error", err)
	}
}

// ResolveID maps a temp id used in an earlier sync to its permanent id.
// Ids without a recorded mapping are returned unchanged.
func (e Engine) ResolveID(ctx context.Context, id string) (string, error) {
	real, err := e.Repo.ResolveID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return id, nil
	}
	return real, err
}

// Cached returns the cached rows of one resource type, validated and
// narrowed the same way a fresh response is.
func (e Engine) Cached(ctx context.Context, t resource.Type) (any, error) {
	if !response.HasShape(t) {
		return nil, &resource.UnknownSelectorError{Kind: "resource shape", Value: string(t)}
	}
	rows, err := e.Repo.ListSnapshots(ctx, repo.SnapshotFilters{Resource: string(t)})
	if err != nil {
		return nil, err
	}
	if t == resource.User {
		if len(rows) == 0 {
			return nil, repo.ErrNotFound
		}
		return response.Validate(t, []byte(rows[0].Payload))
	}
	elems := make([]jsoniter.RawMessage, len(rows))
	for i, r := range rows {
		elems[i] = jsoniter.RawMessage(r.Payload)
	}
	raw, err := json.Marshal(elems)
	if err != nil {
		return nil, err
	}
	return response.Validate(t, raw)
}

// Reset forgets the sync token and cached snapshots.
func (e Engine) Reset(ctx context.Context) error {
	if err := e.Repo.Reset(ctx); err != nil {
		return err
	}
	if e.journalEnabled() {
		return e.Events.Append(ctx, nil, events.Entry{Type: events.TypeReset})
	}
	return nil
}
