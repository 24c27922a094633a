package devserver

import (
	"fmt"
	"net/http"
	"strconv"

	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

// Error codes reported in sync_status.
const (
	codeInvalidArgument = 20
	codeNotFound        = 22
	codeUnknownCommand  = 31
	codeUnsupported     = 32
	codeInvalidTempID   = 15
)

type failure struct {
	code     int
	httpCode int
	msg      string
}

func (f *failure) Error() string { return f.msg }

func invalid(format string, args ...any) error {
	return &failure{code: codeInvalidArgument, httpCode: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

func notFound(kind, id string) error {
	return &failure{code: codeNotFound, httpCode: http.StatusNotFound, msg: fmt.Sprintf("%s %s not found", kind, id)}
}

type handler func(s *State, args map[string]any, ids syncproto.IDMapping) (created string, err error)

var handlers = map[command.Type]handler{
	command.ItemAdd:          itemAdd,
	command.ItemUpdate:       itemUpdate,
	command.ItemMove:         itemMove,
	command.ItemDelete:       itemDelete,
	command.ItemClose:        itemClose,
	command.ItemComplete:     itemComplete,
	command.ItemUncomplete:   itemUncomplete,
	command.ItemReorder:      itemReorder,
	command.ProjectAdd:       projectAdd,
	command.ProjectUpdate:    projectUpdate,
	command.ProjectDelete:    projectDelete,
	command.ProjectArchive:   projectArchive,
	command.ProjectUnarchive: projectUnarchive,
	command.SectionAdd:       sectionAdd,
	command.SectionUpdate:    sectionUpdate,
	command.SectionDelete:    sectionDelete,
	command.LabelAdd:         labelAdd,
	command.LabelUpdate:      labelUpdate,
	command.LabelDelete:      labelDelete,
	command.NoteAdd:          noteAdd,
	command.NoteUpdate:       noteUpdate,
	command.NoteDelete:       noteDelete,
}

// Supported reports whether the dev server applies commands of type t.
func Supported(t command.Type) bool {
	_, ok := handlers[t]
	return ok
}

func (s *State) apply(c CommandBody, ids syncproto.IDMapping) syncproto.Status {
	def, err := command.Lookup(c.Type)
	if err != nil {
		return syncproto.Failed(codeUnknownCommand, http.StatusBadRequest, err.Error())
	}
	h, ok := handlers[def.Type]
	if !ok {
		return syncproto.Failed(codeUnsupported, http.StatusBadRequest, fmt.Sprintf("%s is not supported by the dev server", def.Type))
	}
	if c.TempID != "" {
		if !def.Creates {
			return syncproto.Failed(codeInvalidTempID, http.StatusBadRequest, fmt.Sprintf("%s does not create an entity", def.Type))
		}
		if _, dup := ids[c.TempID]; dup {
			return syncproto.Failed(codeInvalidTempID, http.StatusBadRequest, "temp id already used: "+c.TempID)
		}
	}
	created, err := h(s, c.Args, ids)
	if err != nil {
		if f, ok := err.(*failure); ok {
			return syncproto.Failed(f.code, f.httpCode, f.msg)
		}
		return syncproto.Failed(codeInvalidArgument, http.StatusBadRequest, err.Error())
	}
	if created != "" && c.TempID != "" {
		ids[c.TempID] = created
	}
	return syncproto.OK
}

func decode[T command.Args](raw map[string]any) (T, error) {
	var a T
	b, err := json.Marshal(raw)
	if err != nil {
		return a, invalid("args: %v", err)
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return a, invalid("args: %v", err)
	}
	if err := a.Validate(); err != nil {
		return a, invalid("%v", err)
	}
	return a, nil
}

func (s *State) liveTask(id string) (domain.Task, error) {
	t, ok := s.items.get(id)
	if !ok || t.IsDeleted {
		return t, notFound("item", id)
	}
	return t, nil
}

func (s *State) liveProject(id string) (domain.Project, error) {
	p, ok := s.projects.get(id)
	if !ok || p.IsDeleted {
		return p, notFound("project", id)
	}
	return p, nil
}

func (s *State) liveSection(id string) (domain.Section, error) {
	sec, ok := s.sections.get(id)
	if !ok || sec.IsDeleted {
		return sec, notFound("section", id)
	}
	return sec, nil
}

func (s *State) liveLabel(id string) (domain.Label, error) {
	l, ok := s.labels.get(id)
	if !ok || l.IsDeleted {
		return l, notFound("label", id)
	}
	return l, nil
}

func (s *State) liveNote(id string) (domain.Note, error) {
	n, ok := s.notes.get(id)
	if !ok || n.IsDeleted {
		return n, notFound("note", id)
	}
	return n, nil
}

func (s *State) due(d *command.Due) *domain.Due {
	if d == nil {
		return nil
	}
	out := &domain.Due{Date: d.Date, String: d.String}
	if out.Date == "" {
		out.Date = s.now().Format("2006-01-02")
	}
	if out.String == "" {
		out.String = out.Date
	}
	if d.Lang != "" {
		out.Lang = command.Ptr(d.Lang)
	}
	if d.Timezone != "" {
		out.Timezone = command.Ptr(d.Timezone)
	}
	if d.IsRecurring != nil {
		out.IsRecurring = *d.IsRecurring
	}
	return out
}

func deadline(d *command.Deadline) *domain.Deadline {
	if d == nil {
		return nil
	}
	out := &domain.Deadline{Date: d.Date}
	if d.Lang != "" {
		out.Lang = command.Ptr(d.Lang)
	}
	return out
}

func duration(d *command.Duration) *domain.Duration {
	if d == nil {
		return nil
	}
	return &domain.Duration{Amount: d.Amount, Unit: d.Unit}
}

func optional(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func itoa(i int) string { return strconv.Itoa(i) }
