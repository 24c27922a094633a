package command

var workspaceRoles = []string{"ADMIN", "MEMBER", "GUEST"}

// WorkspaceAddArgs creates a team workspace.
type WorkspaceAddArgs struct {
	sealed
	Name                 string  `json:"name"`
	Description          *string `json:"description,omitempty"`
	IsLinkSharingEnabled *bool   `json:"is_link_sharing_enabled,omitempty"`
	IsGuestAllowed       *bool   `json:"is_guest_allowed,omitempty"`
}

func (WorkspaceAddArgs) Command() Type { return WorkspaceAdd }

func (a WorkspaceAddArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	return c.err(WorkspaceAdd)
}

// WorkspaceUpdateArgs changes workspace attributes.
type WorkspaceUpdateArgs struct {
	sealed
	ID                   string  `json:"id"`
	Name                 *string `json:"name,omitempty"`
	Description          *string `json:"description,omitempty"`
	IsLinkSharingEnabled *bool   `json:"is_link_sharing_enabled,omitempty"`
	IsGuestAllowed       *bool   `json:"is_guest_allowed,omitempty"`
	IsCollapsed          *bool   `json:"is_collapsed,omitempty"`
}

func (WorkspaceUpdateArgs) Command() Type { return WorkspaceUpdate }

func (a WorkspaceUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	return c.err(WorkspaceUpdate)
}

// WorkspaceDeleteArgs deletes a workspace.
type WorkspaceDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (WorkspaceDeleteArgs) Command() Type { return WorkspaceDelete }

func (a WorkspaceDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(WorkspaceDelete)
}

// WorkspaceLeaveArgs removes the current user from a workspace.
type WorkspaceLeaveArgs struct {
	sealed
	ID string `json:"id"`
}

func (WorkspaceLeaveArgs) Command() Type { return WorkspaceLeave }

func (a WorkspaceLeaveArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(WorkspaceLeave)
}

// WorkspaceInviteArgs invites people to a workspace.
type WorkspaceInviteArgs struct {
	sealed
	WorkspaceID string   `json:"workspace_id"`
	EmailList   []string `json:"email_list"`
	Role        string   `json:"role"`
}

func (WorkspaceInviteArgs) Command() Type { return WorkspaceInvite }

func (a WorkspaceInviteArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.nonEmpty("email_list", len(a.EmailList))
	for _, e := range a.EmailList {
		c.email("email_list", e)
	}
	c.role(a.Role)
	return c.err(WorkspaceInvite)
}

// WorkspaceUpdateUserArgs changes a member's role.
type WorkspaceUpdateUserArgs struct {
	sealed
	WorkspaceID string `json:"workspace_id"`
	UserEmail   string `json:"user_email"`
	Role        string `json:"role"`
}

func (WorkspaceUpdateUserArgs) Command() Type { return WorkspaceUpdateUser }

func (a WorkspaceUpdateUserArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.email("user_email", a.UserEmail)
	c.role(a.Role)
	return c.err(WorkspaceUpdateUser)
}

// WorkspaceDeleteUserArgs removes a member from a workspace.
type WorkspaceDeleteUserArgs struct {
	sealed
	WorkspaceID string `json:"workspace_id"`
	UserEmail   string `json:"user_email"`
}

func (WorkspaceDeleteUserArgs) Command() Type { return WorkspaceDeleteUser }

func (a WorkspaceDeleteUserArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.email("user_email", a.UserEmail)
	return c.err(WorkspaceDeleteUser)
}

func (c *checker) role(v string) {
	if v == "" {
		c.fail("role", "required")
		return
	}
	c.oneOf("role", &v, workspaceRoles...)
}

// WorkspaceFilterAddArgs creates a filter shared with a workspace.
type WorkspaceFilterAddArgs struct {
	sealed
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Query       string `json:"query"`
	Color       *int   `json:"color,omitempty"`
	ItemOrder   *int   `json:"item_order,omitempty"`
}

func (WorkspaceFilterAddArgs) Command() Type { return WorkspaceFilterAdd }

func (a WorkspaceFilterAddArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.required("name", a.Name)
	c.required("query", a.Query)
	return c.err(WorkspaceFilterAdd)
}

// WorkspaceFilterUpdateArgs changes a workspace filter.
type WorkspaceFilterUpdateArgs struct {
	sealed
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Query     *string `json:"query,omitempty"`
	Color     *int    `json:"color,omitempty"`
	ItemOrder *int    `json:"item_order,omitempty"`
}

func (WorkspaceFilterUpdateArgs) Command() Type { return WorkspaceFilterUpdate }

func (a WorkspaceFilterUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	c.notBlank("query", a.Query)
	return c.err(WorkspaceFilterUpdate)
}

// WorkspaceFilterDeleteArgs deletes a workspace filter.
type WorkspaceFilterDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (WorkspaceFilterDeleteArgs) Command() Type { return WorkspaceFilterDelete }

func (a WorkspaceFilterDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(WorkspaceFilterDelete)
}

// WorkspaceFilterUpdateOrdersArgs sets item_order for workspace filters.
type WorkspaceFilterUpdateOrdersArgs struct {
	sealed
	IDOrderMapping map[string]int `json:"id_order_mapping"`
}

func (WorkspaceFilterUpdateOrdersArgs) Command() Type { return WorkspaceFilterUpdateOrders }

func (a WorkspaceFilterUpdateOrdersArgs) Validate() error {
	var c checker
	c.orders("id_order_mapping", a.IDOrderMapping)
	return c.err(WorkspaceFilterUpdateOrders)
}

// FolderAddArgs creates a project folder inside a workspace.
type FolderAddArgs struct {
	sealed
	WorkspaceID  string `json:"workspace_id"`
	Name         string `json:"name"`
	DefaultOrder *int   `json:"default_order,omitempty"`
	ChildOrder   *int   `json:"child_order,omitempty"`
}

func (FolderAddArgs) Command() Type { return FolderAdd }

func (a FolderAddArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.required("name", a.Name)
	return c.err(FolderAdd)
}

// FolderUpdateArgs changes a folder.
type FolderUpdateArgs struct {
	sealed
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	DefaultOrder *int    `json:"default_order,omitempty"`
	ChildOrder   *int    `json:"child_order,omitempty"`
}

func (FolderUpdateArgs) Command() Type { return FolderUpdate }

func (a FolderUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	return c.err(FolderUpdate)
}

// FolderDeleteArgs deletes a folder; its projects stay in the workspace.
type FolderDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (FolderDeleteArgs) Command() Type { return FolderDelete }

func (a FolderDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(FolderDelete)
}

// WorkspaceGoalAddArgs creates a workspace goal.
type WorkspaceGoalAddArgs struct {
	sealed
	WorkspaceID string  `json:"workspace_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

func (WorkspaceGoalAddArgs) Command() Type { return WorkspaceGoalAdd }

func (a WorkspaceGoalAddArgs) Validate() error {
	var c checker
	c.required("workspace_id", a.WorkspaceID)
	c.required("name", a.Name)
	return c.err(WorkspaceGoalAdd)
}

// WorkspaceGoalUpdateArgs changes a workspace goal.
type WorkspaceGoalUpdateArgs struct {
	sealed
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

func (WorkspaceGoalUpdateArgs) Command() Type { return WorkspaceGoalUpdate }

func (a WorkspaceGoalUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	return c.err(WorkspaceGoalUpdate)
}

// WorkspaceGoalDeleteArgs deletes a workspace goal.
type WorkspaceGoalDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (WorkspaceGoalDeleteArgs) Command() Type { return WorkspaceGoalDelete }

func (a WorkspaceGoalDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(WorkspaceGoalDelete)
}

// WorkspaceGoalProjectAddArgs links a project to a goal.
type WorkspaceGoalProjectAddArgs struct {
	sealed
	GoalID    string `json:"goal_id"`
	ProjectID string `json:"project_id"`
}

func (WorkspaceGoalProjectAddArgs) Command() Type { return WorkspaceGoalProjectAdd }

func (a WorkspaceGoalProjectAddArgs) Validate() error {
	var c checker
	c.required("goal_id", a.GoalID)
	c.required("project_id", a.ProjectID)
	return c.err(WorkspaceGoalProjectAdd)
}

// WorkspaceGoalProjectRemoveArgs unlinks a project from a goal.
type WorkspaceGoalProjectRemoveArgs struct {
	sealed
	GoalID    string `json:"goal_id"`
	ProjectID string `json:"project_id"`
}

func (WorkspaceGoalProjectRemoveArgs) Command() Type { return WorkspaceGoalProjectRemove }

func (a WorkspaceGoalProjectRemoveArgs) Validate() error {
	var c checker
	c.required("goal_id", a.GoalID)
	c.required("project_id", a.ProjectID)
	return c.err(WorkspaceGoalProjectRemove)
}
