package domain

type Due struct {
	Date        string  `json:"date"`
	String      string  `json:"string,omitempty"`
	Lang        *string `json:"lang,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
}

type Deadline struct {
	Date string  `json:"date"`
	Lang *string `json:"lang,omitempty"`
}

type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type FileAttachment struct {
	FileName     string `json:"file_name,omitempty"`
	FileType     string `json:"file_type,omitempty"`
	FileURL      string `json:"file_url,omitempty"`
	FileSize     *int   `json:"file_size,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	UploadState  string `json:"upload_state,omitempty"`
}

type Task struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id,omitempty"`
	ProjectID      string    `json:"project_id"`
	SectionID      *string   `json:"section_id"`
	ParentID       *string   `json:"parent_id"`
	Content        string    `json:"content"`
	Description    string    `json:"description"`
	Priority       int       `json:"priority"`
	Due            *Due      `json:"due"`
	Deadline       *Deadline `json:"deadline,omitempty"`
	Duration       *Duration `json:"duration,omitempty"`
	Labels         []string  `json:"labels"`
	ChildOrder     int       `json:"child_order"`
	DayOrder       int       `json:"day_order,omitempty"`
	IsCollapsed    bool      `json:"is_collapsed"`
	Checked        bool      `json:"checked"`
	IsDeleted      bool      `json:"is_deleted"`
	AddedByUID     *string   `json:"added_by_uid,omitempty"`
	AssignedByUID  *string   `json:"assigned_by_uid,omitempty"`
	ResponsibleUID *string   `json:"responsible_uid,omitempty"`
	AddedAt        string    `json:"added_at,omitempty"`
	CompletedAt    *string   `json:"completed_at,omitempty"`
	UpdatedAt      *string   `json:"updated_at,omitempty"`
}

type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Color          Color   `json:"color"`
	ParentID       *string `json:"parent_id"`
	ChildOrder     int     `json:"child_order"`
	IsCollapsed    bool    `json:"is_collapsed"`
	Shared         bool    `json:"shared"`
	CanAssignTasks bool    `json:"can_assign_tasks,omitempty"`
	IsDeleted      bool    `json:"is_deleted"`
	IsArchived     bool    `json:"is_archived"`
	IsFavorite     bool    `json:"is_favorite"`
	ViewStyle      string  `json:"view_style,omitempty"`
	InboxProject   *bool   `json:"inbox_project,omitempty"`
	WorkspaceID    *string `json:"workspace_id,omitempty"`
	FolderID       *string `json:"folder_id,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

type Section struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ProjectID    string  `json:"project_id"`
	UserID       string  `json:"user_id,omitempty"`
	SectionOrder int     `json:"section_order"`
	IsCollapsed  bool    `json:"is_collapsed"`
	IsDeleted    bool    `json:"is_deleted"`
	IsArchived   bool    `json:"is_archived"`
	ArchivedAt   *string `json:"archived_at,omitempty"`
	AddedAt      string  `json:"added_at,omitempty"`
}

type Label struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      Color  `json:"color"`
	ItemOrder  int    `json:"item_order"`
	IsDeleted  bool   `json:"is_deleted"`
	IsFavorite bool   `json:"is_favorite"`
}

type Filter struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Query      string `json:"query"`
	Color      Color  `json:"color"`
	ItemOrder  int    `json:"item_order"`
	IsDeleted  bool   `json:"is_deleted"`
	IsFavorite bool   `json:"is_favorite"`
}

type Note struct {
	ID             string              `json:"id"`
	ItemID         string              `json:"item_id"`
	Content        string              `json:"content"`
	PostedUID      string              `json:"posted_uid,omitempty"`
	FileAttachment *FileAttachment     `json:"file_attachment"`
	UIDsToNotify   []string            `json:"uids_to_notify"`
	Reactions      map[string][]string `json:"reactions"`
	IsDeleted      bool                `json:"is_deleted"`
	PostedAt       string              `json:"posted_at,omitempty"`
}

type ProjectNote struct {
	ID             string              `json:"id"`
	ProjectID      string              `json:"project_id"`
	Content        string              `json:"content"`
	PostedUID      string              `json:"posted_uid,omitempty"`
	FileAttachment *FileAttachment     `json:"file_attachment"`
	UIDsToNotify   []string            `json:"uids_to_notify"`
	Reactions      map[string][]string `json:"reactions"`
	IsDeleted      bool                `json:"is_deleted"`
	PostedAt       string              `json:"posted_at,omitempty"`
}

type Reminder struct {
	ID           string  `json:"id"`
	ItemID       string  `json:"item_id"`
	NotifyUID    string  `json:"notify_uid,omitempty"`
	Type         string  `json:"type"`
	Due          *Due    `json:"due,omitempty"`
	MinuteOffset *int    `json:"minute_offset,omitempty"`
	Name         *string `json:"name,omitempty"`
	LocLat       *string `json:"loc_lat,omitempty"`
	LocLong      *string `json:"loc_long,omitempty"`
	LocTrigger   *string `json:"loc_trigger,omitempty"`
	Radius       *int    `json:"radius,omitempty"`
	IsDeleted    bool    `json:"is_deleted"`
}

type Collaborator struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Timezone string  `json:"timezone,omitempty"`
	ImageID  *string `json:"image_id,omitempty"`
}

type Workspace struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          *string `json:"description,omitempty"`
	Role                 string  `json:"role"`
	Plan                 string  `json:"plan,omitempty"`
	IsLinkSharingEnabled bool    `json:"is_link_sharing_enabled"`
	IsGuestAllowed       bool    `json:"is_guest_allowed"`
	IsCollapsed          bool    `json:"is_collapsed,omitempty"`
	IsDeleted            bool    `json:"is_deleted,omitempty"`
	CreatedAt            string  `json:"created_at,omitempty"`
}

type Folder struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WorkspaceID  string `json:"workspace_id"`
	DefaultOrder int    `json:"default_order"`
	ChildOrder   int    `json:"child_order"`
	IsDeleted    bool   `json:"is_deleted"`
}

type LiveNotification struct {
	ID               string  `json:"id"`
	NotificationType string  `json:"notification_type"`
	NotificationKey  string  `json:"notification_key,omitempty"`
	IsUnread         bool    `json:"is_unread"`
	IsDeleted        bool    `json:"is_deleted,omitempty"`
	FromUID          *string `json:"from_uid,omitempty"`
	ProjectID        *string `json:"project_id,omitempty"`
	ItemID           *string `json:"item_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type TZInfo struct {
	Timezone  string `json:"timezone"`
	GMTString string `json:"gmt_string,omitempty"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	IsDST     int    `json:"is_dst"`
}

type User struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	InboxProjectID string  `json:"inbox_project_id"`
	TZInfo         *TZInfo `json:"tz_info,omitempty"`
	Lang           string  `json:"lang,omitempty"`
	StartDay       *int    `json:"start_day,omitempty"`
	StartPage      string  `json:"start_page,omitempty"`
	DailyGoal      *int    `json:"daily_goal,omitempty"`
	WeeklyGoal     *int    `json:"weekly_goal,omitempty"`
	IsPremium      bool    `json:"is_premium"`
	ImageID        *string `json:"image_id,omitempty"`
}
