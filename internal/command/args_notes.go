package command

// NoteAddArgs adds a comment to a task.
type NoteAddArgs struct {
	sealed
	ItemID         string          `json:"item_id"`
	Content        string          `json:"content"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
	UIDsToNotify   []string        `json:"uids_to_notify,omitempty"`
}

func (NoteAddArgs) Command() Type { return NoteAdd }

func (a NoteAddArgs) Validate() error {
	var c checker
	c.required("item_id", a.ItemID)
	if a.FileAttachment == nil {
		c.required("content", a.Content)
	}
	c.attachment("file_attachment", a.FileAttachment)
	return c.err(NoteAdd)
}

// NoteUpdateArgs edits a task comment.
type NoteUpdateArgs struct {
	sealed
	ID             string          `json:"id"`
	Content        *string         `json:"content,omitempty"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
}

func (NoteUpdateArgs) Command() Type { return NoteUpdate }

func (a NoteUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.anySet("content", a.Content != nil, a.FileAttachment != nil)
	c.attachment("file_attachment", a.FileAttachment)
	return c.err(NoteUpdate)
}

// NoteDeleteArgs deletes a task comment.
type NoteDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (NoteDeleteArgs) Command() Type { return NoteDelete }

func (a NoteDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(NoteDelete)
}

// ProjectNoteAddArgs adds a comment to a project.
type ProjectNoteAddArgs struct {
	sealed
	ProjectID      string          `json:"project_id"`
	Content        string          `json:"content"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
}

func (ProjectNoteAddArgs) Command() Type { return ProjectNoteAdd }

func (a ProjectNoteAddArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	if a.FileAttachment == nil {
		c.required("content", a.Content)
	}
	c.attachment("file_attachment", a.FileAttachment)
	return c.err(ProjectNoteAdd)
}

// ProjectNoteUpdateArgs edits a project comment.
type ProjectNoteUpdateArgs struct {
	sealed
	ID             string          `json:"id"`
	Content        *string         `json:"content,omitempty"`
	FileAttachment *FileAttachment `json:"file_attachment,omitempty"`
}

func (ProjectNoteUpdateArgs) Command() Type { return ProjectNoteUpdate }

func (a ProjectNoteUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.anySet("content", a.Content != nil, a.FileAttachment != nil)
	c.attachment("file_attachment", a.FileAttachment)
	return c.err(ProjectNoteUpdate)
}

// ProjectNoteDeleteArgs deletes a project comment.
type ProjectNoteDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (ProjectNoteDeleteArgs) Command() Type { return ProjectNoteDelete }

func (a ProjectNoteDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ProjectNoteDelete)
}
