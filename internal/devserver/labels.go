package devserver

import (
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

func labelAdd(s *State, raw map[string]any, _ syncproto.IDMapping) (string, error) {
	a, err := decode[command.LabelAddArgs](raw)
	if err != nil {
		return "", err
	}
	var dup bool
	s.labels.each(func(l domain.Label) {
		if !l.IsDeleted && l.Name == a.Name {
			dup = true
		}
	})
	if dup {
		return "", invalid("label %q already exists", a.Name)
	}
	l := domain.Label{Name: a.Name, Color: domain.ColorID(47)}
	if a.Color != nil {
		l.Color = domain.ColorID(*a.Color)
	}
	if a.ItemOrder != nil {
		l.ItemOrder = *a.ItemOrder
	}
	if a.IsFavorite != nil {
		l.IsFavorite = *a.IsFavorite
	}
	l.ID = s.newID("label")
	s.labels.put(l.ID, l, s.bump())
	return l.ID, nil
}

func labelUpdate(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.LabelUpdateArgs](raw)
	if err != nil {
		return "", err
	}
	l, err := s.liveLabel(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	rev := s.bump()
	if a.Name != nil && *a.Name != l.Name {
		s.renameLabel(l.Name, *a.Name, rev)
		l.Name = *a.Name
	}
	if a.Color != nil {
		l.Color = domain.ColorID(*a.Color)
	}
	if a.ItemOrder != nil {
		l.ItemOrder = *a.ItemOrder
	}
	if a.IsFavorite != nil {
		l.IsFavorite = *a.IsFavorite
	}
	s.labels.put(l.ID, l, rev)
	return "", nil
}

func labelDelete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.LabelDeleteArgs](raw)
	if err != nil {
		return "", err
	}
	l, err := s.liveLabel(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	rev := s.bump()
	l.IsDeleted = true
	s.labels.put(l.ID, l, rev)
	if a.Cascade != nil && *a.Cascade == "all" {
		s.renameLabel(l.Name, "", rev)
	}
	return "", nil
}

// renameLabel rewrites the label on every task; an empty name removes it.
func (s *State) renameLabel(from, to string, rev int) {
	var changed []domain.Task
	s.items.each(func(t domain.Task) {
		if t.IsDeleted {
			return
		}
		out := make([]string, 0, len(t.Labels))
		hit := false
		for _, name := range t.Labels {
			if name != from {
				out = append(out, name)
				continue
			}
			hit = true
			if to != "" {
				out = append(out, to)
			}
		}
		if hit {
			t.Labels = out
			changed = append(changed, t)
		}
	})
	for _, t := range changed {
		s.items.put(t.ID, t, rev)
	}
}
