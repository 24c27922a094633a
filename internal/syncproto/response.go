package syncproto

import (
	"errors"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/command"
	"todosync/internal/resource"
)

var (
	// ErrCommandFailed is wrapped by every CommandError.
	ErrCommandFailed = errors.New("command failed")
	// ErrNoStatus reports a command the server did not acknowledge.
	ErrNoStatus = errors.New("no sync status for command")
)

// CommandError is a per-command failure from sync_status.
type CommandError struct {
	UUID     string         `json:"-"`
	Command  command.Type   `json:"-"`
	Message  string         `json:"error"`
	Code     int            `json:"error_code"`
	HTTPCode int            `json:"http_code"`
	Tag      string         `json:"error_tag,omitempty"`
	Extra    map[string]any `json:"error_extra,omitempty"`
}

func (e *CommandError) Error() string {
	name := string(e.Command)
	if name == "" {
		name = "command"
	}
	return fmt.Sprintf("%s %s: %s (code %d, http %d)", name, e.UUID, e.Message, e.Code, e.HTTPCode)
}

func (e *CommandError) Unwrap() error { return ErrCommandFailed }

// Status is one sync_status entry: the string "ok" or an error object.
type Status struct {
	Err *CommandError
}

// OK is the acknowledgement of a successful command.
var OK = Status{}

// Failed builds a failing status.
func Failed(code, httpCode int, msg string) Status {
	return Status{Err: &CommandError{Message: msg, Code: code, HTTPCode: httpCode}}
}

func (s Status) IsOK() bool { return s.Err == nil }

func (s Status) MarshalJSON() ([]byte, error) {
	if s.Err == nil {
		return []byte(`"ok"`), nil
	}
	return json.Marshal(s.Err)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v != "ok" {
			return fmt.Errorf("sync status: unexpected %q", v)
		}
		*s = Status{}
		return nil
	}
	var ce CommandError
	if err := json.Unmarshal(b, &ce); err != nil {
		return fmt.Errorf("sync status: %w", err)
	}
	*s = Status{Err: &ce}
	return nil
}

// IDMapping maps temporary ids to the permanent ids the server assigned.
type IDMapping map[string]string

// Resolve returns the permanent id for id, or id itself when it is not a
// mapped temporary id.
func (m IDMapping) Resolve(id string) string {
	if v, ok := m[id]; ok {
		return v
	}
	return id
}

// Lookup returns the permanent id for a temporary one.
func (m IDMapping) Lookup(tempID string) (string, bool) {
	v, ok := m[tempID]
	return v, ok
}

// ResolvePtr is Resolve for optional references.
func (m IDMapping) ResolvePtr(id *string) *string {
	if id == nil {
		return nil
	}
	v := m.Resolve(*id)
	return &v
}

// Response is the decoded body of one sync call. Resource payloads are kept
// raw; they are checked by the response package before use.
type Response struct {
	SyncToken     string
	FullSync      bool
	SyncStatus    map[string]Status
	TempIDMapping IDMapping
	Resources     map[resource.Type]jsoniter.RawMessage
}

// Status returns the acknowledgement for a command uuid.
func (r Response) Status(uuid string) (Status, bool) {
	s, ok := r.SyncStatus[uuid]
	return s, ok
}

// Errors returns the failures for cmds in batch order. Commands missing from
// sync_status yield an error wrapping ErrNoStatus.
func (r Response) Errors(cmds []command.Command) []error {
	var out []error
	for _, c := range cmds {
		s, ok := r.SyncStatus[c.ID()]
		switch {
		case !ok:
			out = append(out, fmt.Errorf("%s %s: %w", c.Type(), c.ID(), ErrNoStatus))
		case s.Err != nil:
			ce := *s.Err
			ce.UUID = c.ID()
			ce.Command = c.Type()
			out = append(out, &ce)
		}
	}
	return out
}

// Resource returns the raw payload for a resource type.
func (r Response) Resource(t resource.Type) (jsoniter.RawMessage, bool) {
	raw, ok := r.Resources[t]
	return raw, ok
}

// ResourceTypes lists the resource payloads present, sorted.
func (r Response) ResourceTypes() []resource.Type {
	out := make([]resource.Type, 0, len(r.Resources))
	for t := range r.Resources {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

const (
	keySyncToken  = "sync_token"
	keyFullSync   = "full_sync"
	keySyncStatus = "sync_status"
	keyTempIDs    = "temp_id_mapping"
)

func (r *Response) UnmarshalJSON(b []byte) error {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	out := Response{Resources: map[resource.Type]jsoniter.RawMessage{}}
	for k, v := range fields {
		var err error
		switch k {
		case keySyncToken:
			err = json.Unmarshal(v, &out.SyncToken)
		case keyFullSync:
			err = json.Unmarshal(v, &out.FullSync)
		case keySyncStatus:
			err = json.Unmarshal(v, &out.SyncStatus)
		case keyTempIDs:
			err = json.Unmarshal(v, &out.TempIDMapping)
		default:
			if t := resource.Type(k); t.Valid() {
				out.Resources[t] = v
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	*r = out
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(r.Resources)+4)
	for t, raw := range r.Resources {
		fields[string(t)] = raw
	}
	fields[keySyncToken] = r.SyncToken
	fields[keyFullSync] = r.FullSync
	status := r.SyncStatus
	if status == nil {
		status = map[string]Status{}
	}
	fields[keySyncStatus] = status
	mapping := r.TempIDMapping
	if mapping == nil {
		mapping = IDMapping{}
	}
	fields[keyTempIDs] = mapping
	return json.Marshal(fields)
}
