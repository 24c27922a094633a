package devserver

import (
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/syncproto"
)

func attachment(a *command.FileAttachment) *domain.FileAttachment {
	if a == nil {
		return nil
	}
	return &domain.FileAttachment{
		FileName:     a.FileName,
		FileType:     a.FileType,
		FileURL:      a.FileURL,
		FileSize:     a.FileSize,
		ResourceType: a.ResourceType,
		UploadState:  "completed",
	}
}

func noteAdd(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.NoteAddArgs](raw)
	if err != nil {
		return "", err
	}
	t, err := s.liveTask(ids.Resolve(a.ItemID))
	if err != nil {
		return "", err
	}
	n := domain.Note{
		ItemID:         t.ID,
		Content:        a.Content,
		PostedUID:      s.user.ID,
		FileAttachment: attachment(a.FileAttachment),
		UIDsToNotify:   a.UIDsToNotify,
		PostedAt:       s.timestamp(),
	}
	n.ID = s.newID("note")
	s.notes.put(n.ID, n, s.bump())
	return n.ID, nil
}

func noteUpdate(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.NoteUpdateArgs](raw)
	if err != nil {
		return "", err
	}
	n, err := s.liveNote(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	if a.Content != nil {
		n.Content = *a.Content
	}
	if a.FileAttachment != nil {
		n.FileAttachment = attachment(a.FileAttachment)
	}
	s.notes.put(n.ID, n, s.bump())
	return "", nil
}

func noteDelete(s *State, raw map[string]any, ids syncproto.IDMapping) (string, error) {
	a, err := decode[command.NoteDeleteArgs](raw)
	if err != nil {
		return "", err
	}
	n, err := s.liveNote(ids.Resolve(a.ID))
	if err != nil {
		return "", err
	}
	n.IsDeleted = true
	s.notes.put(n.ID, n, s.bump())
	return "", nil
}
