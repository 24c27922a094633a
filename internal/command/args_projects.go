package command

var viewStyles = []string{"list", "board", "calendar"}

// ProjectAddArgs creates a project.
type ProjectAddArgs struct {
	sealed
	Name        string  `json:"name"`
	Color       *int    `json:"color,omitempty"`
	ParentID    string  `json:"parent_id,omitempty"`
	ChildOrder  *int    `json:"child_order,omitempty"`
	IsFavorite  *bool   `json:"is_favorite,omitempty"`
	ViewStyle   *string `json:"view_style,omitempty"`
	WorkspaceID string  `json:"workspace_id,omitempty"`
	FolderID    string  `json:"folder_id,omitempty"`
}

func (ProjectAddArgs) Command() Type { return ProjectAdd }

func (a ProjectAddArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	c.oneOf("view_style", a.ViewStyle, viewStyles...)
	if a.FolderID != "" && a.WorkspaceID == "" {
		c.fail("folder_id", "requires workspace_id")
	}
	return c.err(ProjectAdd)
}

// ProjectUpdateArgs changes project attributes.
type ProjectUpdateArgs struct {
	sealed
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Color      *int    `json:"color,omitempty"`
	Collapsed  *bool   `json:"collapsed,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
	ViewStyle  *string `json:"view_style,omitempty"`
}

func (ProjectUpdateArgs) Command() Type { return ProjectUpdate }

func (a ProjectUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	c.oneOf("view_style", a.ViewStyle, viewStyles...)
	return c.err(ProjectUpdate)
}

// ProjectMoveArgs re-parents a project. A nil ParentID moves it to the root.
type ProjectMoveArgs struct {
	sealed
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id"`
}

func (ProjectMoveArgs) Command() Type { return ProjectMove }

func (a ProjectMoveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("parent_id", a.ParentID)
	if a.ParentID != nil && *a.ParentID == a.ID {
		c.fail("parent_id", "must differ from id")
	}
	return c.err(ProjectMove)
}

// ProjectMoveToWorkspaceArgs moves a personal project into a workspace.
type ProjectMoveToWorkspaceArgs struct {
	sealed
	ProjectID   string `json:"project_id"`
	WorkspaceID string `json:"workspace_id"`
	FolderID    string `json:"folder_id,omitempty"`
	IsCollapsed *bool  `json:"is_collapsed,omitempty"`
}

func (ProjectMoveToWorkspaceArgs) Command() Type { return ProjectMoveToWorkspace }

func (a ProjectMoveToWorkspaceArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	c.required("workspace_id", a.WorkspaceID)
	return c.err(ProjectMoveToWorkspace)
}

// ProjectMoveToPersonalArgs moves a workspace project back to personal.
type ProjectMoveToPersonalArgs struct {
	sealed
	ProjectID string `json:"project_id"`
}

func (ProjectMoveToPersonalArgs) Command() Type { return ProjectMoveToPersonal }

func (a ProjectMoveToPersonalArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	return c.err(ProjectMoveToPersonal)
}

// ProjectLeaveArgs leaves a shared workspace project.
type ProjectLeaveArgs struct {
	sealed
	ProjectID string `json:"project_id"`
}

func (ProjectLeaveArgs) Command() Type { return ProjectLeave }

func (a ProjectLeaveArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	return c.err(ProjectLeave)
}

// ProjectDeleteArgs deletes a project with its sections and tasks.
type ProjectDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (ProjectDeleteArgs) Command() Type { return ProjectDelete }

func (a ProjectDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ProjectDelete)
}

// ProjectArchiveArgs archives a project.
type ProjectArchiveArgs struct {
	sealed
	ID string `json:"id"`
}

func (ProjectArchiveArgs) Command() Type { return ProjectArchive }

func (a ProjectArchiveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ProjectArchive)
}

// ProjectUnarchiveArgs restores an archived project.
type ProjectUnarchiveArgs struct {
	sealed
	ID string `json:"id"`
}

func (ProjectUnarchiveArgs) Command() Type { return ProjectUnarchive }

func (a ProjectUnarchiveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ProjectUnarchive)
}

// ProjectOrder positions one project among its siblings.
type ProjectOrder struct {
	ID         string `json:"id"`
	ChildOrder int    `json:"child_order"`
}

// ProjectReorderArgs updates child_order of sibling projects.
type ProjectReorderArgs struct {
	sealed
	Projects []ProjectOrder `json:"projects"`
}

func (ProjectReorderArgs) Command() Type { return ProjectReorder }

func (a ProjectReorderArgs) Validate() error {
	var c checker
	c.nonEmpty("projects", len(a.Projects))
	for _, p := range a.Projects {
		if p.ID == "" {
			c.fail("projects.id", "required")
			break
		}
	}
	return c.err(ProjectReorder)
}
