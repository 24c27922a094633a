// Package response checks resource payloads returned by a sync round-trip
// against the shape the application relies on, and narrows accepted payloads
// into domain values. It performs no I/O.
package response

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/domain"
	"todosync/internal/resource"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrShapeInvalid is wrapped by every ShapeError.
var ErrShapeInvalid = errors.New("response shape invalid")

// ShapeError reports a payload that does not satisfy its resource shape.
type ShapeError struct {
	Resource resource.Type
	// Index is the offending element of a collection, or -1.
	Index  int
	Issues []Issue
	// Payload is the value handed to Validate, unmodified.
	Payload any
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("%s: invalid payload", e.Resource)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: invalid element %d", e.Resource, e.Index)
	}
	for i, is := range e.Issues {
		if i == 0 {
			msg += ": "
		} else {
			msg += "; "
		}
		msg += is.String()
	}
	return msg
}

func (e *ShapeError) Unwrap() error { return ErrShapeInvalid }

type entry struct {
	shape *Shape
	one   func([]byte) (any, error)
	many  func([]byte) (any, error)
}

var shapes = map[resource.Type]entry{}

func register[T any](t resource.Type, s *Shape) {
	shapes[t] = entry{shape: s, one: decode[T], many: decode[[]T]}
}

func decode[T any](b []byte) (any, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	register[domain.Task](resource.Items, itemShape)
	register[domain.Project](resource.Projects, projectShape)
	register[domain.Section](resource.Sections, sectionShape)
	register[domain.Label](resource.Labels, labelShape)
	register[domain.Filter](resource.Filters, filterShape)
	register[domain.Note](resource.Notes, noteShape)
	register[domain.ProjectNote](resource.ProjectNotes, projectNoteShape)
	register[domain.Reminder](resource.Reminders, reminderShape)
	register[domain.Collaborator](resource.Collaborators, collaboratorShape)
	register[domain.Workspace](resource.Workspaces, workspaceShape)
	register[domain.Folder](resource.Folders, folderShape)
	register[domain.LiveNotification](resource.LiveNotifications, liveNotificationShape)
	register[domain.User](resource.User, userShape)
}

// Shaped returns the resource types Validate accepts, sorted.
func Shaped() []resource.Type {
	out := make([]resource.Type, 0, len(shapes))
	for t := range shapes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasShape reports whether Validate accepts t.
func HasShape(t resource.Type) bool {
	_, ok := shapes[t]
	return ok
}

// Validate checks payload against the shape registered for tag. payload may
// be raw JSON bytes, a generically decoded value, or a value previously
// returned by Validate. An object narrows to the domain value (for example
// domain.Task); a list narrows to a slice of it and fails on the first
// invalid element.
func Validate(tag resource.Type, payload any) (any, error) {
	e, ok := shapes[tag]
	if !ok {
		kind := "resource type"
		if tag.Valid() {
			kind = "resource shape"
		}
		return nil, &resource.UnknownSelectorError{Kind: kind, Value: string(tag)}
	}
	invalid := func(index int, issues ...Issue) error {
		return &ShapeError{Resource: tag, Index: index, Issues: issues, Payload: payload}
	}

	raw, err := encode(payload)
	if err != nil {
		return nil, invalid(-1, Issue{Message: err.Error()})
	}
	generic, err := decodeGeneric(raw)
	if err != nil {
		return nil, invalid(-1, Issue{Message: "invalid JSON: " + err.Error()})
	}

	switch g := generic.(type) {
	case map[string]any:
		if issues := e.shape.check("", g, nil); len(issues) > 0 {
			return nil, invalid(-1, issues...)
		}
		v, err := e.one(raw)
		if err != nil {
			return nil, invalid(-1, Issue{Message: err.Error()})
		}
		return v, nil
	case []any:
		for i, el := range g {
			path := fmt.Sprintf("[%d]", i)
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, invalid(i, Issue{Path: path, Message: "expected object, got " + describe(el)})
			}
			if issues := e.shape.check(path, obj, nil); len(issues) > 0 {
				return nil, invalid(i, issues...)
			}
		}
		v, err := e.many(raw)
		if err != nil {
			return nil, invalid(-1, Issue{Message: err.Error()})
		}
		return v, nil
	}
	return nil, invalid(-1, Issue{Message: "expected object or list, got " + describe(generic)})
}

// Item validates a single object payload and returns it as T.
func Item[T any](tag resource.Type, payload any) (T, error) {
	var zero T
	v, err := Validate(tag, payload)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s narrows to %T, not %T", tag, v, zero)
	}
	return out, nil
}

// Collection validates a list payload and returns it as []T.
func Collection[T any](tag resource.Type, payload any) ([]T, error) {
	v, err := Validate(tag, payload)
	if err != nil {
		return nil, err
	}
	out, ok := v.([]T)
	if !ok {
		return nil, fmt.Errorf("%s narrows to %T, not %T", tag, v, out)
	}
	return out, nil
}

func encode(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case jsoniter.RawMessage:
		return p, nil
	case stdjson.RawMessage:
		return p, nil
	case nil:
		return []byte("null"), nil
	}
	return json.Marshal(payload)
}

func decodeGeneric(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
