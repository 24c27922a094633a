// Package command defines the closed set of sync commands, the argument
// shape each one accepts, and the builder that turns them into wire-ready
// command records.
package command

import (
	"fmt"
	"sort"

	"todosync/internal/resource"
)

// Type identifies a sync command by its wire name.
type Type string

// Family groups commands by the resource they mutate.
type Family string

const (
	FamilyItems             Family = "items"
	FamilyProjects          Family = "projects"
	FamilySections          Family = "sections"
	FamilyLabels            Family = "labels"
	FamilyFilters           Family = "filters"
	FamilyReminders         Family = "reminders"
	FamilyNotes             Family = "notes"
	FamilySharing           Family = "sharing"
	FamilyLiveNotifications Family = "live_notifications"
	FamilyUser              Family = "user"
	FamilyWorkspaces        Family = "workspaces"
	FamilyWorkspaceFilters  Family = "workspace_filters"
	FamilyFolders           Family = "folders"
	FamilyViewOptions       Family = "view_options"
	FamilyCalendars         Family = "calendars"
	FamilyWorkspaceGoals    Family = "workspace_goals"
)

const (
	ItemAdd                Type = "item_add"
	ItemUpdate             Type = "item_update"
	ItemMove               Type = "item_move"
	ItemReorder            Type = "item_reorder"
	ItemDelete             Type = "item_delete"
	ItemClose              Type = "item_close"
	ItemComplete           Type = "item_complete"
	ItemUncomplete         Type = "item_uncomplete"
	ItemUpdateDateComplete Type = "item_update_date_complete"
	ItemUpdateDayOrders    Type = "item_update_day_orders"

	ProjectAdd             Type = "project_add"
	ProjectUpdate          Type = "project_update"
	ProjectMove            Type = "project_move"
	ProjectMoveToWorkspace Type = "project_move_to_workspace"
	ProjectMoveToPersonal  Type = "project_move_to_personal"
	ProjectLeave           Type = "project_leave"
	ProjectDelete          Type = "project_delete"
	ProjectArchive         Type = "project_archive"
	ProjectUnarchive       Type = "project_unarchive"
	ProjectReorder         Type = "project_reorder"

	SectionAdd       Type = "section_add"
	SectionUpdate    Type = "section_update"
	SectionMove      Type = "section_move"
	SectionReorder   Type = "section_reorder"
	SectionDelete    Type = "section_delete"
	SectionArchive   Type = "section_archive"
	SectionUnarchive Type = "section_unarchive"

	LabelAdd               Type = "label_add"
	LabelUpdate            Type = "label_update"
	LabelDelete            Type = "label_delete"
	LabelUpdateOrders      Type = "label_update_orders"
	LabelRename            Type = "label_rename"
	LabelDeleteOccurrences Type = "label_delete_occurrences"

	FilterAdd          Type = "filter_add"
	FilterUpdate       Type = "filter_update"
	FilterDelete       Type = "filter_delete"
	FilterUpdateOrders Type = "filter_update_orders"

	ReminderAdd    Type = "reminder_add"
	ReminderUpdate Type = "reminder_update"
	ReminderDelete Type = "reminder_delete"

	NoteAdd           Type = "note_add"
	NoteUpdate        Type = "note_update"
	NoteDelete        Type = "note_delete"
	ProjectNoteAdd    Type = "project_note_add"
	ProjectNoteUpdate Type = "project_note_update"
	ProjectNoteDelete Type = "project_note_delete"

	ShareProject       Type = "share_project"
	DeleteCollaborator Type = "delete_collaborator"
	AcceptInvitation   Type = "accept_invitation"
	RejectInvitation   Type = "reject_invitation"
	DeleteInvitation   Type = "delete_invitation"

	LiveNotificationsSetLastRead Type = "live_notifications_set_last_read"
	LiveNotificationsMarkRead    Type = "live_notifications_mark_read"
	LiveNotificationsMarkReadAll Type = "live_notifications_mark_read_all"
	LiveNotificationsMarkUnread  Type = "live_notifications_mark_unread"

	UserUpdate                Type = "user_update"
	UserUpdateGoals           Type = "user_update_goals"
	UserSettingsUpdate        Type = "user_settings_update"
	UpdateNotificationSetting Type = "update_notification_setting"

	WorkspaceAdd        Type = "workspace_add"
	WorkspaceUpdate     Type = "workspace_update"
	WorkspaceDelete     Type = "workspace_delete"
	WorkspaceLeave      Type = "workspace_leave"
	WorkspaceInvite     Type = "workspace_invite"
	WorkspaceUpdateUser Type = "workspace_update_user"
	WorkspaceDeleteUser Type = "workspace_delete_user"

	WorkspaceFilterAdd          Type = "workspace_filter_add"
	WorkspaceFilterUpdate       Type = "workspace_filter_update"
	WorkspaceFilterDelete       Type = "workspace_filter_delete"
	WorkspaceFilterUpdateOrders Type = "workspace_filter_update_orders"

	FolderAdd    Type = "folder_add"
	FolderUpdate Type = "folder_update"
	FolderDelete Type = "folder_delete"

	ViewOptionsSet                Type = "view_options_set"
	ViewOptionsDelete             Type = "view_options_delete"
	ProjectViewOptionsDefaultsSet Type = "project_view_options_defaults_set"

	CalendarUpdate        Type = "calendar_update"
	CalendarAccountUpdate Type = "calendar_account_update"

	WorkspaceGoalAdd           Type = "workspace_goal_add"
	WorkspaceGoalUpdate        Type = "workspace_goal_update"
	WorkspaceGoalDelete        Type = "workspace_goal_delete"
	WorkspaceGoalProjectAdd    Type = "workspace_goal_project_add"
	WorkspaceGoalProjectRemove Type = "workspace_goal_project_remove"
)

// Definition describes one registered command.
type Definition struct {
	Type   Type
	Family Family
	// Variants lists the legal discriminant values for commands whose
	// argument shape is a tagged union. Empty for single-shape commands.
	Variants []string
	// Creates is set when the command introduces a new entity that later
	// commands in the same batch may reference through its temp id.
	Creates bool
}

var (
	moveVariants     = []string{VariantParent, VariantSection, VariantProject}
	reminderVariants = []string{VariantAbsolute, VariantRelative, VariantLocation}
	shareVariants    = []string{VariantEmail, VariantUser}
)

func def(t Type, f Family) Definition { return Definition{Type: t, Family: f} }

func creates(t Type, f Family) Definition { return Definition{Type: t, Family: f, Creates: true} }

func union(t Type, f Family, variants []string) Definition {
	return Definition{Type: t, Family: f, Variants: variants}
}

var registry = func() map[Type]Definition {
	defs := []Definition{
		creates(ItemAdd, FamilyItems),
		def(ItemUpdate, FamilyItems),
		union(ItemMove, FamilyItems, moveVariants),
		def(ItemReorder, FamilyItems),
		def(ItemDelete, FamilyItems),
		def(ItemClose, FamilyItems),
		def(ItemComplete, FamilyItems),
		def(ItemUncomplete, FamilyItems),
		def(ItemUpdateDateComplete, FamilyItems),
		def(ItemUpdateDayOrders, FamilyItems),

		creates(ProjectAdd, FamilyProjects),
		def(ProjectUpdate, FamilyProjects),
		def(ProjectMove, FamilyProjects),
		def(ProjectMoveToWorkspace, FamilyProjects),
		def(ProjectMoveToPersonal, FamilyProjects),
		def(ProjectLeave, FamilyProjects),
		def(ProjectDelete, FamilyProjects),
		def(ProjectArchive, FamilyProjects),
		def(ProjectUnarchive, FamilyProjects),
		def(ProjectReorder, FamilyProjects),

		creates(SectionAdd, FamilySections),
		def(SectionUpdate, FamilySections),
		def(SectionMove, FamilySections),
		def(SectionReorder, FamilySections),
		def(SectionDelete, FamilySections),
		def(SectionArchive, FamilySections),
		def(SectionUnarchive, FamilySections),

		creates(LabelAdd, FamilyLabels),
		def(LabelUpdate, FamilyLabels),
		def(LabelDelete, FamilyLabels),
		def(LabelUpdateOrders, FamilyLabels),
		def(LabelRename, FamilyLabels),
		def(LabelDeleteOccurrences, FamilyLabels),

		creates(FilterAdd, FamilyFilters),
		def(FilterUpdate, FamilyFilters),
		def(FilterDelete, FamilyFilters),
		def(FilterUpdateOrders, FamilyFilters),

		{Type: ReminderAdd, Family: FamilyReminders, Variants: reminderVariants, Creates: true},
		union(ReminderUpdate, FamilyReminders, reminderVariants),
		def(ReminderDelete, FamilyReminders),

		creates(NoteAdd, FamilyNotes),
		def(NoteUpdate, FamilyNotes),
		def(NoteDelete, FamilyNotes),
		creates(ProjectNoteAdd, FamilyNotes),
		def(ProjectNoteUpdate, FamilyNotes),
		def(ProjectNoteDelete, FamilyNotes),

		union(ShareProject, FamilySharing, shareVariants),
		def(DeleteCollaborator, FamilySharing),
		def(AcceptInvitation, FamilySharing),
		def(RejectInvitation, FamilySharing),
		def(DeleteInvitation, FamilySharing),

		def(LiveNotificationsSetLastRead, FamilyLiveNotifications),
		def(LiveNotificationsMarkRead, FamilyLiveNotifications),
		def(LiveNotificationsMarkReadAll, FamilyLiveNotifications),
		def(LiveNotificationsMarkUnread, FamilyLiveNotifications),

		def(UserUpdate, FamilyUser),
		def(UserUpdateGoals, FamilyUser),
		def(UserSettingsUpdate, FamilyUser),
		def(UpdateNotificationSetting, FamilyUser),

		creates(WorkspaceAdd, FamilyWorkspaces),
		def(WorkspaceUpdate, FamilyWorkspaces),
		def(WorkspaceDelete, FamilyWorkspaces),
		def(WorkspaceLeave, FamilyWorkspaces),
		def(WorkspaceInvite, FamilyWorkspaces),
		def(WorkspaceUpdateUser, FamilyWorkspaces),
		def(WorkspaceDeleteUser, FamilyWorkspaces),

		creates(WorkspaceFilterAdd, FamilyWorkspaceFilters),
		def(WorkspaceFilterUpdate, FamilyWorkspaceFilters),
		def(WorkspaceFilterDelete, FamilyWorkspaceFilters),
		def(WorkspaceFilterUpdateOrders, FamilyWorkspaceFilters),

		creates(FolderAdd, FamilyFolders),
		def(FolderUpdate, FamilyFolders),
		def(FolderDelete, FamilyFolders),

		def(ViewOptionsSet, FamilyViewOptions),
		def(ViewOptionsDelete, FamilyViewOptions),
		def(ProjectViewOptionsDefaultsSet, FamilyViewOptions),

		def(CalendarUpdate, FamilyCalendars),
		def(CalendarAccountUpdate, FamilyCalendars),

		creates(WorkspaceGoalAdd, FamilyWorkspaceGoals),
		def(WorkspaceGoalUpdate, FamilyWorkspaceGoals),
		def(WorkspaceGoalDelete, FamilyWorkspaceGoals),
		def(WorkspaceGoalProjectAdd, FamilyWorkspaceGoals),
		def(WorkspaceGoalProjectRemove, FamilyWorkspaceGoals),
	}
	m := make(map[Type]Definition, len(defs))
	for _, d := range defs {
		if _, dup := m[d.Type]; dup {
			panic(fmt.Sprintf("command %s registered twice", d.Type))
		}
		m[d.Type] = d
	}
	return m
}()

// Lookup returns the definition registered for name.
func Lookup(name string) (Definition, error) {
	d, ok := registry[Type(name)]
	if !ok {
		return Definition{}, unknownCommand(name)
	}
	return d, nil
}

// Definitions returns every registered command sorted by family, then name.
func Definitions() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// Valid reports whether t is a registered command.
func (t Type) Valid() bool {
	_, ok := registry[t]
	return ok
}

func (t Type) String() string { return string(t) }

func unknownCommand(name string) error {
	return fmt.Errorf("%w: %w", ErrUnknownCommand, &resource.UnknownSelectorError{Kind: "command", Value: name})
}
