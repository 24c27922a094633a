package devserver

import (
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

func sectionAdd(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.SectionAddArgs](raw)
	if err != nil {
		return "", err
	}
	p, err := s.liveProject(ids.Resolve(a.ProjectID))
	if err != nil {
		return "", err
	}
	sec := domain.Section{
		Name:      a.Name,
		ProjectID: p.ID,
		UserID:    s.user.ID,
		AddedAt:   s.timestamp(),
	}
	if a.SectionOrder != nil {
		sec.SectionOrder = *a.SectionOrder
	} else {
		s.sections.each(func(o domain.Section) {
			if !o.IsDeleted && o.ProjectID == p.ID && o.SectionOrder >= sec.SectionOrder {
				sec.SectionOrder = o.SectionOrder + 1
			}
		})
	}
	sec.ID = s.newID("section")
	s.sections.put(sec.ID, sec, s.bump())
	return sec.ID, nil
}

func sectionUpdate(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.SectionUpdateArgs](raw)
	if err != nil {
		return "", err
	}
	sec, err := s.liveSection(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	if a.Name != nil {
		sec.Name = *a.Name
	}
	if a.Collapsed != nil {
		sec.IsCollapsed = *a.Collapsed
	}
	s.sections.put(sec.ID, sec, s.bump())
	return "", nil
}

func sectionDelete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.SectionDeleteArgs](raw)
	if err != nil {
		return "", err
	}
	sec, err := s.liveSection(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	rev := s.bump()
	sec.IsDeleted = true
	s.sections.put(sec.ID, sec, rev)
	var tasks []string
	s.items.each(func(t domain.Task) {
		if t.SectionID != nil && *t.SectionID == sec.ID && !t.IsDeleted {
			tasks = append(tasks, t.ID)
		}
	})
	for _, id := range tasks {
		s.deleteTask(id, rev)
	}
	return "", nil
}
