package command

// SectionAddArgs creates a section in a project.
type SectionAddArgs struct {
	sealed
	Name         string `json:"name"`
	ProjectID    string `json:"project_id"`
	SectionOrder *int   `json:"section_order,omitempty"`
}

func (SectionAddArgs) Command() Type { return SectionAdd }

func (a SectionAddArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	c.required("project_id", a.ProjectID)
	return c.err(SectionAdd)
}

// SectionUpdateArgs renames or collapses a section.
type SectionUpdateArgs struct {
	sealed
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Collapsed *bool   `json:"collapsed,omitempty"`
}

func (SectionUpdateArgs) Command() Type { return SectionUpdate }

func (a SectionUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	return c.err(SectionUpdate)
}

// SectionMoveArgs moves a section to another project.
type SectionMoveArgs struct {
	sealed
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

func (SectionMoveArgs) Command() Type { return SectionMove }

func (a SectionMoveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.required("project_id", a.ProjectID)
	return c.err(SectionMove)
}

// SectionOrder positions one section inside its project.
type SectionOrder struct {
	ID           string `json:"id"`
	SectionOrder int    `json:"section_order"`
}

// SectionReorderArgs updates section_order of sections in one project.
type SectionReorderArgs struct {
	sealed
	Sections []SectionOrder `json:"sections"`
}

func (SectionReorderArgs) Command() Type { return SectionReorder }

func (a SectionReorderArgs) Validate() error {
	var c checker
	c.nonEmpty("sections", len(a.Sections))
	for _, s := range a.Sections {
		if s.ID == "" {
			c.fail("sections.id", "required")
			break
		}
	}
	return c.err(SectionReorder)
}

// SectionDeleteArgs deletes a section and its tasks.
type SectionDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (SectionDeleteArgs) Command() Type { return SectionDelete }

func (a SectionDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(SectionDelete)
}

// SectionArchiveArgs archives a section.
type SectionArchiveArgs struct {
	sealed
	ID string `json:"id"`
}

func (SectionArchiveArgs) Command() Type { return SectionArchive }

func (a SectionArchiveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(SectionArchive)
}

// SectionUnarchiveArgs restores an archived section.
type SectionUnarchiveArgs struct {
	sealed
	ID string `json:"id"`
}

func (SectionUnarchiveArgs) Command() Type { return SectionUnarchive }

func (a SectionUnarchiveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(SectionUnarchive)
}
