// Package syncproto holds the request and response envelopes of one sync
// round-trip.
package syncproto

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/command"
	"todosync/internal/resource"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FullSync is the sync token that asks for every resource from scratch.
const FullSync = "*"

var (
	ErrDuplicateTempID  = errors.New("duplicate temp id in batch")
	ErrDuplicateCommand = errors.New("duplicate command uuid in batch")
	ErrZeroCommand      = errors.New("command was not built")
)

// Batch accumulates commands for a single request. Order of Add calls is
// kept exactly. A Batch is not safe for concurrent use.
type Batch struct {
	commands      []command.Command
	uuids         map[string]bool
	tempIDs       map[string]bool
	syncToken     string
	resourceTypes []resource.Type
}

// NewBatch returns an empty batch that will request a full sync unless a
// token is set.
func NewBatch() *Batch {
	return &Batch{uuids: map[string]bool{}, tempIDs: map[string]bool{}}
}

// Add appends commands in order. Nothing is appended when any of them is
// rejected.
func (b *Batch) Add(cmds ...command.Command) error {
	if b.uuids == nil {
		b.uuids = map[string]bool{}
		b.tempIDs = map[string]bool{}
	}
	uuids := map[string]bool{}
	temps := map[string]bool{}
	for _, c := range cmds {
		if c.IsZero() {
			return ErrZeroCommand
		}
		if b.uuids[c.ID()] || uuids[c.ID()] {
			return fmt.Errorf("%w: %s", ErrDuplicateCommand, c.ID())
		}
		uuids[c.ID()] = true
		if tmp, ok := c.TempID(); ok {
			if b.tempIDs[tmp] || temps[tmp] {
				return fmt.Errorf("%w: %s", ErrDuplicateTempID, tmp)
			}
			temps[tmp] = true
		}
	}
	for id := range uuids {
		b.uuids[id] = true
	}
	for id := range temps {
		b.tempIDs[id] = true
	}
	b.commands = append(b.commands, cmds...)
	return nil
}

// SetSyncToken sets the token from the previous round-trip. Empty means a
// full sync.
func (b *Batch) SetSyncToken(token string) { b.syncToken = token }

// Want adds resource types to fetch, dropping duplicates. Nothing is added
// when any type is not a known selector.
func (b *Batch) Want(types ...resource.Type) error {
	for _, t := range types {
		if !t.Valid() {
			return &resource.UnknownSelectorError{Kind: "resource type", Value: string(t)}
		}
	}
	for _, t := range types {
		dup := false
		for _, have := range b.resourceTypes {
			if have == t {
				dup = true
				break
			}
		}
		if !dup {
			b.resourceTypes = append(b.resourceTypes, t)
		}
	}
	return nil
}

// Len returns the number of commands.
func (b *Batch) Len() int { return len(b.commands) }

// HasTempID reports whether a command in the batch carries id as its temp id.
func (b *Batch) HasTempID(id string) bool { return b.tempIDs[id] }

// Commands returns the commands in insertion order.
func (b *Batch) Commands() []command.Command {
	out := make([]command.Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Request freezes the batch into a request value.
func (b *Batch) Request() Request {
	types := make([]resource.Type, len(b.resourceTypes))
	copy(types, b.resourceTypes)
	return Request{SyncToken: b.syncToken, ResourceTypes: types, Commands: b.Commands()}
}

// Request is the body of one sync call.
type Request struct {
	SyncToken     string
	ResourceTypes []resource.Type
	Commands      []command.Command
}

type wireRequest struct {
	SyncToken     string            `json:"sync_token"`
	ResourceTypes []resource.Type   `json:"resource_types,omitempty"`
	Commands      []command.Command `json:"commands,omitempty"`
}

// Token returns the token sent on the wire.
func (r Request) Token() string {
	if r.SyncToken == "" {
		return FullSync
	}
	return r.SyncToken
}

func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRequest{SyncToken: r.Token(), ResourceTypes: r.ResourceTypes, Commands: r.Commands})
}
