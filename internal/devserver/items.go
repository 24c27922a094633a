package devserver

import (
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

func itemAdd(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemAddArgs](raw)
	if err != nil {
		return "", err
	}
	t := domain.Task{
		UserID:      s.user.ID,
		ProjectID:   s.user.InboxProjectID,
		Content:     a.Content,
		Description: a.Description,
		Priority:    1,
		Due:         s.due(a.Due),
		Deadline:    deadline(a.Deadline),
		Duration:    duration(a.Duration),
		Labels:      a.Labels,
		AddedByUID:  command.Ptr(s.user.ID),
		AddedAt:     s.timestamp(),
	}
	if t.Labels == nil {
		t.Labels = []string{}
	}
	if a.ProjectID != "" {
		p, err := s.liveProject(ids.Resolve(a.ProjectID))
		if err != nil {
			return "", err
		}
		t.ProjectID = p.ID
	}
	if a.SectionID != "" {
		sec, err := s.liveSection(ids.Resolve(a.SectionID))
		if err != nil {
			return "", err
		}
		t.SectionID = &sec.ID
		t.ProjectID = sec.ProjectID
	}
	if a.ParentID != "" {
		parent, err := s.liveTask(ids.Resolve(a.ParentID))
		if err != nil {
			return "", err
		}
		t.ParentID = &parent.ID
		t.ProjectID = parent.ProjectID
		t.SectionID = parent.SectionID
	}
	if a.Priority != nil {
		t.Priority = *a.Priority
	}
	if a.ResponsibleUID != "" {
		t.ResponsibleUID = command.Ptr(a.ResponsibleUID)
	}
	if a.DayOrder != nil {
		t.DayOrder = *a.DayOrder
	}
	if a.ChildOrder != nil {
		t.ChildOrder = *a.ChildOrder
	} else {
		t.ChildOrder = s.nextChildOrder(t.ProjectID, t.ParentID)
	}
	t.ID = s.newID("item")
	s.items.put(t.ID, t, s.bump())
	return t.ID, nil
}

func (s *State) nextChildOrder(projectID string, parentID *string) int {
	highest := 0
	s.items.each(func(t domain.Task) {
		if t.IsDeleted || t.ProjectID != projectID || !samePtr(t.ParentID, parentID) {
			return
		}
		if t.ChildOrder > highest {
			highest = t.ChildOrder
		}
	})
	return highest + 1
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func itemUpdate(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemUpdateArgs](raw)
	if err != nil {
		return "", err
	}
	t, err := s.liveTask(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	if a.Content != nil {
		t.Content = *a.Content
	}
	if a.Description != nil {
		t.Description = *a.Description
	}
	if a.Labels != nil {
		t.Labels = a.Labels
	}
	if a.Priority != nil {
		t.Priority = *a.Priority
	}
	if a.Due != nil {
		t.Due = s.due(a.Due)
	}
	if a.Deadline != nil {
		t.Deadline = deadline(a.Deadline)
	}
	if a.Duration != nil {
		t.Duration = duration(a.Duration)
	}
	if a.ResponsibleUID != nil {
		t.ResponsibleUID = optional(*a.ResponsibleUID)
	}
	if a.Collapsed != nil {
		t.IsCollapsed = *a.Collapsed
	}
	if a.DayOrder != nil {
		t.DayOrder = *a.DayOrder
	}
	t.UpdatedAt = command.Ptr(s.timestamp())
	s.items.put(t.ID, t, s.bump())
	return "", nil
}

func itemMove(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	var (
		id     string
		target func(*domain.Task) error
	)
	switch {
	case raw["parent_id"] != nil:
		a, err := decode[command.ItemMoveToParentArgs](raw)
		if err != nil {
			return "", err
		}
		id = a.ID
		target = func(t *domain.Task) error {
			parent, err := s.liveTask(ids.Resolve(a.ParentID))
			if err != nil {
				return err
			}
			if parent.ID == t.ID {
				return invalid("item cannot be its own parent")
			}
			t.ParentID, t.ProjectID, t.SectionID = &parent.ID, parent.ProjectID, parent.SectionID
			return nil
		}
	case raw["section_id"] != nil:
		a, err := decode[command.ItemMoveToSectionArgs](raw)
		if err != nil {
			return "", err
		}
		id = a.ID
		target = func(t *domain.Task) error {
			sec, err := s.liveSection(ids.Resolve(a.SectionID))
			if err != nil {
				return err
			}
			t.ParentID, t.ProjectID, t.SectionID = nil, sec.ProjectID, &sec.ID
			return nil
		}
	case raw["project_id"] != nil:
		a, err := decode[command.ItemMoveToProjectArgs](raw)
		if err != nil {
			return "", err
		}
		id = a.ID
		target = func(t *domain.Task) error {
			p, err := s.liveProject(ids.Resolve(a.ProjectID))
			if err != nil {
				return err
			}
			t.ParentID, t.ProjectID, t.SectionID = nil, p.ID, nil
			return nil
		}
	default:
		return "", invalid("item_move requires one of parent_id, section_id, project_id")
	}
	t, err := s.liveTask(ids.Resolve(id))
	if err != nil {
		return "", err
	}
	if err := target(&t); err != nil {
		return "", err
	}
	t.ChildOrder = s.nextChildOrder(t.ProjectID, t.ParentID)
	s.items.put(t.ID, t, s.bump())
	return "", nil
}

// deleteTask removes t and its subtasks.
func (s *State) deleteTask(id string, rev int) {
	t, ok := s.items.get(id)
	if !ok || t.IsDeleted {
		return
	}
	t.IsDeleted = true
	s.items.put(id, t, rev)
	var children []string
	s.items.each(func(c domain.Task) {
		if c.ParentID != nil && *c.ParentID == id && !c.IsDeleted {
			children = append(children, c.ID)
		}
	})
	for _, c := range children {
		s.deleteTask(c, rev)
	}
}

func itemDelete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemDeleteArgs](raw)
	if err != nil {
		return "", err
	}
	t, err := s.liveTask(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	s.deleteTask(t.ID, s.bump())
	return "", nil
}

func (s *State) check(id string, checked bool, at string) error {
	t, err := s.liveTask(id)
	if err != nil {
		return err
	}
	t.Checked = checked
	t.CompletedAt = optional(at)
	s.items.put(t.ID, t, s.bump())
	return nil
}

func itemClose(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemCloseArgs](raw)
	if err != nil {
		return "", err
	}
	return "", s.check(ids.Resolve(a.ID), true, s.timestamp())
}

func itemComplete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemCompleteArgs](raw)
	if err != nil {
		return "", err
	}
	at := a.DateCompleted
	if at == "" {
		at = s.timestamp()
	}
	return "", s.check(ids.Resolve(a.ID), true, at)
}

func itemUncomplete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemUncompleteArgs](raw)
	if err != nil {
		return "", err
	}
	return "", s.check(ids.Resolve(a.ID), false, "")
}

func itemReorder(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.ItemReorderArgs](raw)
	if err != nil {
		return "", err
	}
	tasks := make([]domain.Task, 0, len(a.Items))
	for _, it := range a.Items {
		t, err := s.liveTask(ids.Resolve(it.ID))
		if err != nil {
			return "", err
		}
		t.ChildOrder = it.ChildOrder
		tasks = append(tasks, t)
	}
	rev := s.bump()
	for _, t := range tasks {
		s.items.put(t.ID, t, rev)
	}
	return "", nil
}
