package command

// ItemAddArgs creates a task.
type ItemAddArgs struct {
	sealed
	Content         string    `json:"content"`
	Description     string    `json:"description,omitempty"`
	ProjectID       string    `json:"project_id,omitempty"`
	SectionID       string    `json:"section_id,omitempty"`
	ParentID        string    `json:"parent_id,omitempty"`
	ChildOrder      *int      `json:"child_order,omitempty"`
	DayOrder        *int      `json:"day_order,omitempty"`
	Labels          []string  `json:"labels,omitempty"`
	Priority        *int      `json:"priority,omitempty"`
	Due             *Due      `json:"due,omitempty"`
	Deadline        *Deadline `json:"deadline,omitempty"`
	Duration        *Duration `json:"duration,omitempty"`
	ResponsibleUID  string    `json:"responsible_uid,omitempty"`
	AutoReminder    *bool     `json:"auto_reminder,omitempty"`
	AutoParseLabels *bool     `json:"auto_parse_labels,omitempty"`
}

func (ItemAddArgs) Command() Type { return ItemAdd }

func (a ItemAddArgs) Validate() error {
	var c checker
	c.required("content", a.Content)
	c.between("priority", a.Priority, 1, 4)
	c.due("due", a.Due)
	if a.Deadline != nil {
		c.required("deadline.date", a.Deadline.Date)
	}
	c.duration("duration", a.Duration)
	return c.err(ItemAdd)
}

// ItemUpdateArgs changes task attributes. Nil fields are left untouched.
type ItemUpdateArgs struct {
	sealed
	ID             string    `json:"id"`
	Content        *string   `json:"content,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Labels         []string  `json:"labels,omitempty"`
	Priority       *int      `json:"priority,omitempty"`
	Due            *Due      `json:"due,omitempty"`
	Deadline       *Deadline `json:"deadline,omitempty"`
	Duration       *Duration `json:"duration,omitempty"`
	ResponsibleUID *string   `json:"responsible_uid,omitempty"`
	Collapsed      *bool     `json:"collapsed,omitempty"`
	DayOrder       *int      `json:"day_order,omitempty"`
}

func (ItemUpdateArgs) Command() Type { return ItemUpdate }

func (a ItemUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("content", a.Content)
	c.between("priority", a.Priority, 1, 4)
	c.due("due", a.Due)
	c.duration("duration", a.Duration)
	return c.err(ItemUpdate)
}

// ItemMoveToParentArgs moves a task under another task.
type ItemMoveToParentArgs struct {
	sealed
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
}

func (ItemMoveToParentArgs) Command() Type   { return ItemMove }
func (ItemMoveToParentArgs) Variant() string { return VariantParent }

func (a ItemMoveToParentArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.required("parent_id", a.ParentID)
	if a.ID != "" && a.ID == a.ParentID {
		c.fail("parent_id", "must differ from id")
	}
	return c.err(ItemMove)
}

// ItemMoveToSectionArgs moves a task into a section.
type ItemMoveToSectionArgs struct {
	sealed
	ID        string `json:"id"`
	SectionID string `json:"section_id"`
}

func (ItemMoveToSectionArgs) Command() Type   { return ItemMove }
func (ItemMoveToSectionArgs) Variant() string { return VariantSection }

func (a ItemMoveToSectionArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.required("section_id", a.SectionID)
	return c.err(ItemMove)
}

// ItemMoveToProjectArgs moves a task to the root of a project.
type ItemMoveToProjectArgs struct {
	sealed
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

func (ItemMoveToProjectArgs) Command() Type   { return ItemMove }
func (ItemMoveToProjectArgs) Variant() string { return VariantProject }

func (a ItemMoveToProjectArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.required("project_id", a.ProjectID)
	return c.err(ItemMove)
}

// ItemOrder positions one task among its siblings.
type ItemOrder struct {
	ID         string `json:"id"`
	ChildOrder int    `json:"child_order"`
}

// ItemReorderArgs updates child_order of sibling tasks.
type ItemReorderArgs struct {
	sealed
	Items []ItemOrder `json:"items"`
}

func (ItemReorderArgs) Command() Type { return ItemReorder }

func (a ItemReorderArgs) Validate() error {
	var c checker
	c.nonEmpty("items", len(a.Items))
	for _, it := range a.Items {
		if it.ID == "" {
			c.fail("items.id", "required")
			break
		}
	}
	return c.err(ItemReorder)
}

// ItemDeleteArgs deletes a task and its subtasks.
type ItemDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (ItemDeleteArgs) Command() Type { return ItemDelete }

func (a ItemDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ItemDelete)
}

// ItemCloseArgs closes a task the way the check box does: recurring tasks
// move to their next occurrence.
type ItemCloseArgs struct {
	sealed
	ID string `json:"id"`
}

func (ItemCloseArgs) Command() Type { return ItemClose }

func (a ItemCloseArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ItemClose)
}

// ItemCompleteArgs marks a task completed.
type ItemCompleteArgs struct {
	sealed
	ID            string `json:"id"`
	DateCompleted string `json:"date_completed,omitempty"`
	ForceHistory  *bool  `json:"force_history,omitempty"`
}

func (ItemCompleteArgs) Command() Type { return ItemComplete }

func (a ItemCompleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ItemComplete)
}

// ItemUncompleteArgs reopens a completed task.
type ItemUncompleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (ItemUncompleteArgs) Command() Type { return ItemUncomplete }

func (a ItemUncompleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ItemUncomplete)
}

// ItemUpdateDateCompleteArgs completes one occurrence of a recurring task.
type ItemUpdateDateCompleteArgs struct {
	sealed
	ID            string `json:"id"`
	Due           *Due   `json:"due,omitempty"`
	IsForward     *bool  `json:"is_forward,omitempty"`
	ResetSubtasks *bool  `json:"reset_subtasks,omitempty"`
}

func (ItemUpdateDateCompleteArgs) Command() Type { return ItemUpdateDateComplete }

func (a ItemUpdateDateCompleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.due("due", a.Due)
	return c.err(ItemUpdateDateComplete)
}

// ItemUpdateDayOrdersArgs sets the order of tasks in the Today view.
type ItemUpdateDayOrdersArgs struct {
	sealed
	IDsToOrders map[string]int `json:"ids_to_orders"`
}

func (ItemUpdateDayOrdersArgs) Command() Type { return ItemUpdateDayOrders }

func (a ItemUpdateDayOrdersArgs) Validate() error {
	var c checker
	c.orders("ids_to_orders", a.IDsToOrders)
	return c.err(ItemUpdateDayOrders)
}
