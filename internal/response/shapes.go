package response

var (
	dueShape = &Shape{Fields: []Field{
		req("date", String),
		opt("string", String),
		opt("lang", String).null(),
		opt("timezone", String).null(),
		opt("is_recurring", Bool),
	}}
	deadlineShape = &Shape{Fields: []Field{
		req("date", String),
		opt("lang", String).null(),
	}}
	durationShape = &Shape{Fields: []Field{
		req("amount", Integer),
		req("unit", String).oneOf("minute", "day"),
	}}
	attachmentShape = &Shape{Fields: []Field{
		opt("file_name", String),
		opt("file_type", String),
		opt("file_url", String),
		opt("file_size", Integer).null(),
		opt("resource_type", String),
		opt("upload_state", String).oneOf("pending", "completed"),
	}}
	tzShape = &Shape{Fields: []Field{
		req("timezone", String),
		opt("gmt_string", String),
		opt("hours", Integer),
		opt("minutes", Integer),
		opt("is_dst", Integer),
	}}
)

var itemShape = &Shape{Fields: []Field{
	req("id", String),
	opt("user_id", String),
	req("project_id", String),
	opt("section_id", String).null(),
	opt("parent_id", String).null(),
	req("content", String),
	opt("description", String),
	req("priority", Integer).between(1, 4),
	opt("due", Object).null().of(dueShape),
	opt("deadline", Object).null().of(deadlineShape),
	opt("duration", Object).null().of(durationShape),
	opt("labels", StringList).null(),
	req("child_order", Integer),
	opt("day_order", Integer),
	opt("is_collapsed", Bool),
	req("checked", Bool),
	req("is_deleted", Bool),
	opt("added_by_uid", String).null(),
	opt("assigned_by_uid", String).null(),
	opt("responsible_uid", String).null(),
	opt("added_at", String),
	opt("completed_at", String).null(),
	opt("updated_at", String).null(),
}}

var projectShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	req("color", ColorRef),
	opt("parent_id", String).null(),
	req("child_order", Integer),
	opt("is_collapsed", Bool),
	opt("shared", Bool),
	opt("can_assign_tasks", Bool),
	req("is_deleted", Bool),
	req("is_archived", Bool),
	req("is_favorite", Bool),
	opt("view_style", String).oneOf("list", "board", "calendar"),
	opt("inbox_project", Bool),
	opt("workspace_id", String).null(),
	opt("folder_id", String).null(),
	opt("created_at", String),
	opt("updated_at", String),
}}

var sectionShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	req("project_id", String),
	opt("user_id", String),
	req("section_order", Integer),
	opt("is_collapsed", Bool),
	req("is_deleted", Bool),
	opt("is_archived", Bool),
	opt("archived_at", String).null(),
	opt("added_at", String),
}}

var labelShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	req("color", ColorRef),
	req("item_order", Integer),
	req("is_deleted", Bool),
	req("is_favorite", Bool),
}}

var filterShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	req("query", String),
	req("color", ColorRef),
	req("item_order", Integer),
	req("is_deleted", Bool),
	req("is_favorite", Bool),
}}

var noteFields = []Field{
	req("id", String),
	req("content", String),
	opt("posted_uid", String),
	opt("file_attachment", Object).null().of(attachmentShape),
	opt("uids_to_notify", StringList).null(),
	opt("reactions", Object).null(),
	req("is_deleted", Bool),
	opt("posted_at", String),
}

var noteShape = &Shape{Fields: append([]Field{req("item_id", String)}, noteFields...)}

var projectNoteShape = &Shape{Fields: append([]Field{req("project_id", String)}, noteFields...)}

var reminderShape = &Shape{Fields: []Field{
	req("id", String),
	req("item_id", String),
	opt("notify_uid", String),
	req("type", String).oneOf("relative", "absolute", "location"),
	opt("due", Object).null().of(dueShape),
	opt("minute_offset", Integer).null(),
	opt("name", String).null(),
	opt("loc_lat", String).null(),
	opt("loc_long", String).null(),
	opt("loc_trigger", String).null().oneOf("on_enter", "on_leave"),
	opt("radius", Integer).null(),
	req("is_deleted", Bool),
}}

var collaboratorShape = &Shape{Fields: []Field{
	req("id", String),
	req("email", String),
	req("full_name", String),
	opt("timezone", String),
	opt("image_id", String).null(),
}}

var workspaceShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	opt("description", String).null(),
	req("role", String).oneOf("ADMIN", "MEMBER", "GUEST"),
	opt("plan", String),
	req("is_link_sharing_enabled", Bool),
	req("is_guest_allowed", Bool),
	opt("is_collapsed", Bool),
	opt("is_deleted", Bool),
	opt("created_at", String),
}}

var folderShape = &Shape{Fields: []Field{
	req("id", String),
	req("name", String),
	req("workspace_id", String),
	opt("default_order", Integer),
	opt("child_order", Integer),
	req("is_deleted", Bool),
}}

var liveNotificationShape = &Shape{Fields: []Field{
	req("id", String),
	req("notification_type", String),
	opt("notification_key", String),
	req("is_unread", Bool),
	opt("is_deleted", Bool),
	opt("from_uid", String).null(),
	opt("project_id", String).null(),
	opt("item_id", String).null(),
	req("created_at", String),
}}

var userShape = &Shape{Fields: []Field{
	req("id", String),
	req("email", String),
	req("full_name", String),
	req("inbox_project_id", String),
	opt("tz_info", Object).null().of(tzShape),
	opt("lang", String),
	opt("start_day", Integer).null().between(1, 7),
	opt("start_page", String),
	opt("daily_goal", Integer).null(),
	opt("weekly_goal", Integer).null(),
	opt("is_premium", Bool),
	opt("image_id", String).null(),
}}
