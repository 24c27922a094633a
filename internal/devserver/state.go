package devserver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/resource"
	"todosync/internal/syncproto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const tokenPrefix = "dev-"

// ErrInvalidToken is returned for sync tokens this server never issued.
var ErrInvalidToken = errors.New("invalid sync token")

// served lists the resource types the dev server can return.
var served = []resource.Type{
	resource.Items, resource.Projects, resource.Sections, resource.Labels,
	resource.Notes, resource.User,
}

type row[T any] struct {
	v   T
	rev int
}

// table keeps rows in insertion order with the revision of their last
// change.
type table[T any] struct {
	rows  map[string]*row[T]
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]*row[T]{}}
}

func (t *table[T]) get(id string) (T, bool) {
	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.v, true
}

func (t *table[T]) put(id string, v T, rev int) {
	if r, ok := t.rows[id]; ok {
		r.v, r.rev = v, rev
		return
	}
	t.rows[id] = &row[T]{v: v, rev: rev}
	t.order = append(t.order, id)
}

func (t *table[T]) each(fn func(T)) {
	for _, id := range t.order {
		fn(t.rows[id].v)
	}
}

// since returns rows changed after rev. A full read skips deleted rows.
func (t *table[T]) since(rev int, full bool, deleted func(T) bool) []T {
	out := []T{}
	for _, id := range t.order {
		r := t.rows[id]
		if full {
			if !deleted(r.v) {
				out = append(out, r.v)
			}
			continue
		}
		if r.rev > rev {
			out = append(out, r.v)
		}
	}
	return out
}

// State is the in-memory account behind the dev server. It is safe for
// concurrent use.
type State struct {
	Now func() time.Time

	mu       sync.Mutex
	rev      int
	seq      int
	user     domain.User
	userRev  int
	items    *table[domain.Task]
	projects *table[domain.Project]
	sections *table[domain.Section]
	labels   *table[domain.Label]
	notes    *table[domain.Note]
}

// NewState returns an account holding one user and its inbox project.
func NewState() *State {
	s := &State{
		Now:      time.Now,
		items:    newTable[domain.Task](),
		projects: newTable[domain.Project](),
		sections: newTable[domain.Section](),
		labels:   newTable[domain.Label](),
		notes:    newTable[domain.Note](),
	}
	inbox := domain.Project{
		ID:           s.newID("project"),
		Name:         "Inbox",
		Color:        domain.ColorID(47),
		ViewStyle:    "list",
		InboxProject: command.Ptr(true),
		CreatedAt:    s.timestamp(),
	}
	s.rev = 1
	s.projects.put(inbox.ID, inbox, s.rev)
	s.user = domain.User{
		ID:             "user-1",
		Email:          "dev@example.com",
		FullName:       "Dev User",
		InboxProjectID: inbox.ID,
		Lang:           "en",
		TZInfo:         &domain.TZInfo{Timezone: "UTC", GMTString: "+00:00"},
	}
	s.userRev = s.rev
	return s
}

func (s *State) newID(kind string) string {
	s.seq++
	return kind + "-" + strconv.Itoa(s.seq)
}

func (s *State) bump() int {
	s.rev++
	return s.rev
}

func (s *State) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *State) timestamp() string { return s.now().Format(time.RFC3339) }

// Sync applies the commands in order and returns the requested resources.
func (s *State) Sync(req SyncRequest) (syncproto.Response, error) {
	types, err := resource.ParseList(req.ResourceTypes)
	if err != nil {
		return syncproto.Response{}, err
	}
	since, full, err := parseToken(req.SyncToken)
	if err != nil {
		return syncproto.Response{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := syncproto.IDMapping{}
	status := make(map[string]syncproto.Status, len(req.Commands))
	for _, c := range req.Commands {
		status[c.UUID] = s.apply(c, ids)
	}
	resources, err := s.collect(types, since, full)
	if err != nil {
		return syncproto.Response{}, err
	}
	return syncproto.Response{
		SyncToken:     tokenPrefix + strconv.Itoa(s.rev),
		FullSync:      full,
		SyncStatus:    status,
		TempIDMapping: ids,
		Resources:     resources,
	}, nil
}

func parseToken(token string) (int, bool, error) {
	if token == "" || token == syncproto.FullSync {
		return 0, true, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(token, tokenPrefix))
	if err != nil || !strings.HasPrefix(token, tokenPrefix) || n < 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return n, false, nil
}

func (s *State) collect(types []resource.Type, since int, full bool) (map[resource.Type]jsoniter.RawMessage, error) {
	want := map[resource.Type]bool{}
	for _, t := range types {
		if t == resource.All {
			for _, st := range served {
				want[st] = true
			}
			continue
		}
		want[t] = true
	}
	out := map[resource.Type]jsoniter.RawMessage{}
	add := func(t resource.Type, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
		out[t] = raw
		return nil
	}
	var err error
	for _, t := range served {
		if !want[t] {
			continue
		}
		switch t {
		case resource.Items:
			err = add(t, s.items.since(since, full, func(v domain.Task) bool { return v.IsDeleted }))
		case resource.Projects:
			err = add(t, s.projects.since(since, full, func(v domain.Project) bool { return v.IsDeleted }))
		case resource.Sections:
			err = add(t, s.sections.since(since, full, func(v domain.Section) bool { return v.IsDeleted }))
		case resource.Labels:
			err = add(t, s.labels.since(since, full, func(v domain.Label) bool { return v.IsDeleted }))
		case resource.Notes:
			err = add(t, s.notes.since(since, full, func(v domain.Note) bool { return v.IsDeleted }))
		case resource.User:
			if full || s.userRev > since {
				err = add(t, s.user)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
