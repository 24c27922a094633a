package command

var (
	viewTypes = []string{"TODAY", "UPCOMING", "PROJECT", "LABEL", "FILTER", "WORKSPACE_FILTER", "SEARCH", "TEMPLATE_PREVIEW"}
	viewModes = []string{"LIST", "BOARD", "CALENDAR"}
)

// objectViews need an object id naming the project, label or filter.
var objectViews = map[string]bool{"PROJECT": true, "LABEL": true, "FILTER": true, "WORKSPACE_FILTER": true}

// ViewOptionsSetArgs stores grouping and sorting for one view.
type ViewOptionsSetArgs struct {
	sealed
	ViewType           string  `json:"view_type"`
	ObjectID           string  `json:"object_id,omitempty"`
	GroupedBy          *string `json:"groupedby,omitempty"`
	SortedBy           *string `json:"sortedby,omitempty"`
	SortOrder          *string `json:"sort_order,omitempty"`
	ShowCompletedTasks *bool   `json:"show_completed_tasks,omitempty"`
	ViewMode           *string `json:"view_mode,omitempty"`
}

func (ViewOptionsSetArgs) Command() Type { return ViewOptionsSet }

func (a ViewOptionsSetArgs) Validate() error {
	var c checker
	c.view(a.ViewType, a.ObjectID)
	c.oneOf("sort_order", a.SortOrder, "ASC", "DESC")
	c.oneOf("view_mode", a.ViewMode, viewModes...)
	return c.err(ViewOptionsSet)
}

// ViewOptionsDeleteArgs resets one view to defaults.
type ViewOptionsDeleteArgs struct {
	sealed
	ViewType string `json:"view_type"`
	ObjectID string `json:"object_id,omitempty"`
}

func (ViewOptionsDeleteArgs) Command() Type { return ViewOptionsDelete }

func (a ViewOptionsDeleteArgs) Validate() error {
	var c checker
	c.view(a.ViewType, a.ObjectID)
	return c.err(ViewOptionsDelete)
}

// ProjectViewOptionsDefaultsSetArgs sets the view defaults every
// collaborator of a project starts from.
type ProjectViewOptionsDefaultsSetArgs struct {
	sealed
	ProjectID string  `json:"project_id"`
	ViewMode  *string `json:"view_mode,omitempty"`
	GroupedBy *string `json:"groupedby,omitempty"`
	SortedBy  *string `json:"sortedby,omitempty"`
	SortOrder *string `json:"sort_order,omitempty"`
}

func (ProjectViewOptionsDefaultsSetArgs) Command() Type { return ProjectViewOptionsDefaultsSet }

func (a ProjectViewOptionsDefaultsSetArgs) Validate() error {
	var c checker
	c.required("project_id", a.ProjectID)
	c.oneOf("view_mode", a.ViewMode, viewModes...)
	c.oneOf("sort_order", a.SortOrder, "ASC", "DESC")
	return c.err(ProjectViewOptionsDefaultsSet)
}

func (c *checker) view(viewType, objectID string) {
	if viewType == "" {
		c.fail("view_type", "required")
		return
	}
	c.oneOf("view_type", &viewType, viewTypes...)
	if objectViews[viewType] && objectID == "" {
		c.fail("object_id", "required for "+viewType)
	}
}

// CalendarUpdateArgs toggles one linked calendar.
type CalendarUpdateArgs struct {
	sealed
	ID             string `json:"id"`
	IsVisible      *bool  `json:"is_visible,omitempty"`
	IsTaskCalendar *bool  `json:"is_task_calendar,omitempty"`
}

func (CalendarUpdateArgs) Command() Type { return CalendarUpdate }

func (a CalendarUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.anySet("calendar", a.IsVisible != nil, a.IsTaskCalendar != nil)
	return c.err(CalendarUpdate)
}

// CalendarAccountUpdateArgs toggles a linked calendar account.
type CalendarAccountUpdateArgs struct {
	sealed
	ID             string `json:"id"`
	IsAllCalendars *bool  `json:"is_all_calendars,omitempty"`
}

func (CalendarAccountUpdateArgs) Command() Type { return CalendarAccountUpdate }

func (a CalendarAccountUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.anySet("is_all_calendars", a.IsAllCalendars != nil)
	return c.err(CalendarAccountUpdate)
}
