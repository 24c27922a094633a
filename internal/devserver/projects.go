package devserver

import (
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

func projectAdd(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ProjectAddArgs](raw)
	if err != nil {
		return "", err
	}
	p := domain.Project{
		Name:      a.Name,
		Color:     domain.ColorID(47),
		ViewStyle: "list",
		CreatedAt: s.timestamp(),
	}
	if a.Color != nil {
		p.Color = domain.ColorID(*a.Color)
	}
	if a.ViewStyle != nil {
		p.ViewStyle = *a.ViewStyle
	}
	if a.IsFavorite != nil {
		p.IsFavorite = *a.IsFavorite
	}
	if a.ParentID != "" {
		parent, err := s.liveProject(ids.Resolve(a.ParentID))
		if err != nil {
			return "", err
		}
		p.ParentID = &parent.ID
	}
	if a.WorkspaceID != "" {
		p.WorkspaceID = command.Ptr(a.WorkspaceID)
		p.FolderID = optional(a.FolderID)
	}
	if a.ChildOrder != nil {
		p.ChildOrder = *a.ChildOrder
	} else {
		s.projects.each(func(o domain.Project) {
			if !o.IsDeleted && samePtr(o.ParentID, p.ParentID) && o.ChildOrder >= p.ChildOrder {
				p.ChildOrder = o.ChildOrder + 1
			}
		})
	}
	p.ID = s.newID("project")
	s.projects.put(p.ID, p, s.bump())
	return p.ID, nil
}

func projectUpdate(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ProjectUpdateArgs](raw)
	if err != nil {
		return "", err
	}
	p, err := s.liveProject(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	if a.Name != nil {
		p.Name = *a.Name
	}
	if a.Color != nil {
		p.Color = domain.ColorID(*a.Color)
	}
	if a.Collapsed != nil {
		p.IsCollapsed = *a.Collapsed
	}
	if a.IsFavorite != nil {
		p.IsFavorite = *a.IsFavorite
	}
	if a.ViewStyle != nil {
		p.ViewStyle = *a.ViewStyle
	}
	p.UpdatedAt = s.timestamp()
	s.projects.put(p.ID, p, s.bump())
	return "", nil
}

func (s *State) mutableProject(id string) (domain.Project, error) {
	p, err := s.liveProject(id)
	if err != nil {
		return p, err
	}
	if p.InboxProject != nil && *p.InboxProject {
		return p, invalid("the inbox project cannot be changed this way")
	}
	return p, nil
}

func projectDelete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ProjectDeleteArgs](raw)
	if err != nil {
		return "", err
	}
	p, err := s.mutableProject(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	rev := s.bump()
	p.IsDeleted = true
	s.projects.put(p.ID, p, rev)
	var tasks, sections []string
	s.items.each(func(t domain.Task) {
		if t.ProjectID == p.ID && !t.IsDeleted {
			tasks = append(tasks, t.ID)
		}
	})
	s.sections.each(func(sec domain.Section) {
		if sec.ProjectID == p.ID && !sec.IsDeleted {
			sections = append(sections, sec.ID)
		}
	})
	for _, id := range tasks {
		s.deleteTask(id, rev)
	}
	for _, id := range sections {
		sec, _ := s.sections.get(id)
		sec.IsDeleted = true
		s.sections.put(id, sec, rev)
	}
	return "", nil
}

func projectArchive(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ProjectArchiveArgs](raw)
	if err != nil {
		return "", err
	}
	return "", s.archiveProject(ids.Resolve(a.ID), true)
}

func projectUnarchive(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ProjectUnarchiveArgs](raw)
	if err != nil {
		return "", err
	}
	return "", s.archiveProject(ids.Resolve(a.ID), false)
}

func (s *State) archiveProject(id string, archived bool) error {
	p, err := s.mutableProject(id)
	if err != nil {
		return err
	}
	p.IsArchived = archived
	s.projects.put(p.ID, p, s.bump())
	return nil
}
