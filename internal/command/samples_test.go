package command_test

import "todosync/internal/command"

var ptr = command.Ptr[string]

// samples holds one valid argument value per command name, plus every
// variant of the tagged families.
var samples = []command.Args{
	command.ItemAddArgs{Content: "Buy milk", ProjectID: "p1", Priority: command.Ptr(4), Due: &command.Due{String: "tomorrow"}, Duration: &command.Duration{Amount: 15, Unit: "minute"}},
	command.ItemUpdateArgs{ID: "i1", Content: ptr("Buy oat milk")},
	command.ItemMoveToParentArgs{ID: "i1", ParentID: "i2"},
	command.ItemMoveToSectionArgs{ID: "i1", SectionID: "s1"},
	command.ItemMoveToProjectArgs{ID: "i1", ProjectID: "p1"},
	command.ItemReorderArgs{Items: []command.ItemOrder{{ID: "i1", ChildOrder: 1}, {ID: "i2", ChildOrder: 2}}},
	command.ItemDeleteArgs{ID: "i1"},
	command.ItemCloseArgs{ID: "i1"},
	command.ItemCompleteArgs{ID: "i1", DateCompleted: "2024-01-01T10:00:00Z"},
	command.ItemUncompleteArgs{ID: "i1"},
	command.ItemUpdateDateCompleteArgs{ID: "i1", Due: &command.Due{Date: "2024-02-01"}},
	command.ItemUpdateDayOrdersArgs{IDsToOrders: map[string]int{"i1": 1, "i2": 2}},

	command.ProjectAddArgs{Name: "Home", Color: command.Ptr(30), ViewStyle: ptr("board")},
	command.ProjectUpdateArgs{ID: "p1", Name: ptr("House")},
	command.ProjectMoveArgs{ID: "p1", ParentID: ptr("p2")},
	command.ProjectMoveToWorkspaceArgs{ProjectID: "p1", WorkspaceID: "w1"},
	command.ProjectMoveToPersonalArgs{ProjectID: "p1"},
	command.ProjectLeaveArgs{ProjectID: "p1"},
	command.ProjectDeleteArgs{ID: "p1"},
	command.ProjectArchiveArgs{ID: "p1"},
	command.ProjectUnarchiveArgs{ID: "p1"},
	command.ProjectReorderArgs{Projects: []command.ProjectOrder{{ID: "p1", ChildOrder: 1}}},

	command.SectionAddArgs{Name: "Groceries", ProjectID: "p1"},
	command.SectionUpdateArgs{ID: "s1", Collapsed: command.Ptr(true)},
	command.SectionMoveArgs{ID: "s1", ProjectID: "p2"},
	command.SectionReorderArgs{Sections: []command.SectionOrder{{ID: "s1", SectionOrder: 1}}},
	command.SectionDeleteArgs{ID: "s1"},
	command.SectionArchiveArgs{ID: "s1"},
	command.SectionUnarchiveArgs{ID: "s1"},

	command.LabelAddArgs{Name: "errand", Color: command.Ptr(41)},
	command.LabelUpdateArgs{ID: "l1", IsFavorite: command.Ptr(true)},
	command.LabelDeleteArgs{ID: "l1", Cascade: ptr("all")},
	command.LabelUpdateOrdersArgs{IDOrderMapping: map[string]int{"l1": 1}},
	command.LabelRenameArgs{NameOld: "errand", NameNew: "errands"},
	command.LabelDeleteOccurrencesArgs{Name: "errands"},

	command.FilterAddArgs{Name: "Urgent", Query: "p1 & today"},
	command.FilterUpdateArgs{ID: "f1", Query: ptr("p1")},
	command.FilterDeleteArgs{ID: "f1"},
	command.FilterUpdateOrdersArgs{IDOrderMapping: map[string]int{"f1": 3}},

	command.ReminderAbsoluteArgs{ItemID: "i1", Due: command.Due{Date: "2024-03-01T09:00:00Z"}},
	command.ReminderRelativeArgs{ItemID: "i1", MinuteOffset: 30},
	command.ReminderLocationArgs{ItemID: "i1", Name: "Office", LocLat: "52.52", LocLong: "13.40", LocTrigger: "on_enter", Radius: command.Ptr(100)},
	command.ReminderUpdateAbsoluteArgs{ID: "r1", Due: &command.Due{Date: "2024-03-02"}},
	command.ReminderUpdateRelativeArgs{ID: "r1", MinuteOffset: command.Ptr(60)},
	command.ReminderUpdateLocationArgs{ID: "r1", LocTrigger: ptr("on_leave")},
	command.ReminderDeleteArgs{ID: "r1"},

	command.NoteAddArgs{ItemID: "i1", Content: "see attached"},
	command.NoteUpdateArgs{ID: "n1", Content: ptr("edited")},
	command.NoteDeleteArgs{ID: "n1"},
	command.ProjectNoteAddArgs{ProjectID: "p1", Content: "kickoff notes"},
	command.ProjectNoteUpdateArgs{ID: "pn1", Content: ptr("kickoff notes v2")},
	command.ProjectNoteDeleteArgs{ID: "pn1"},

	command.ShareProjectByEmailArgs{ProjectID: "p1", Email: "ann@example.com"},
	command.ShareProjectWithUserArgs{ProjectID: "p1", UserID: "u2", Role: ptr("READ_WRITE")},
	command.DeleteCollaboratorArgs{ProjectID: "p1", Email: "ann@example.com"},
	command.AcceptInvitationArgs{InvitationID: "inv1", InvitationSecret: "s3cret"},
	command.RejectInvitationArgs{InvitationID: "inv1", InvitationSecret: "s3cret"},
	command.DeleteInvitationArgs{InvitationID: "inv1"},

	command.LiveNotificationsSetLastReadArgs{ID: "ln1"},
	command.LiveNotificationsMarkReadArgs{IDs: []string{"ln1"}},
	command.LiveNotificationsMarkReadAllArgs{},
	command.LiveNotificationsMarkUnreadArgs{IDs: []string{"ln1"}},

	command.UserUpdateArgs{Timezone: ptr("Europe/Berlin"), StartDay: command.Ptr(1)},
	command.UserUpdateGoalsArgs{DailyGoal: command.Ptr(5), IgnoreDays: []int{6, 7}},
	command.UserSettingsUpdateArgs{ReminderEmail: command.Ptr(false)},
	command.UpdateNotificationSettingArgs{NotificationType: "item_completed", Service: "email", DontNotify: true},

	command.WorkspaceAddArgs{Name: "Acme"},
	command.WorkspaceUpdateArgs{ID: "w1", Description: ptr("Acme Inc.")},
	command.WorkspaceDeleteArgs{ID: "w1"},
	command.WorkspaceLeaveArgs{ID: "w1"},
	command.WorkspaceInviteArgs{WorkspaceID: "w1", EmailList: []string{"bob@example.com"}, Role: "MEMBER"},
	command.WorkspaceUpdateUserArgs{WorkspaceID: "w1", UserEmail: "bob@example.com", Role: "ADMIN"},
	command.WorkspaceDeleteUserArgs{WorkspaceID: "w1", UserEmail: "bob@example.com"},

	command.WorkspaceFilterAddArgs{WorkspaceID: "w1", Name: "Team today", Query: "today"},
	command.WorkspaceFilterUpdateArgs{ID: "wf1", Name: ptr("Team overdue")},
	command.WorkspaceFilterDeleteArgs{ID: "wf1"},
	command.WorkspaceFilterUpdateOrdersArgs{IDOrderMapping: map[string]int{"wf1": 1}},

	command.FolderAddArgs{WorkspaceID: "w1", Name: "Marketing"},
	command.FolderUpdateArgs{ID: "fo1", Name: ptr("Growth")},
	command.FolderDeleteArgs{ID: "fo1"},

	command.ViewOptionsSetArgs{ViewType: "PROJECT", ObjectID: "p1", ViewMode: ptr("BOARD"), SortOrder: ptr("ASC")},
	command.ViewOptionsDeleteArgs{ViewType: "TODAY"},
	command.ProjectViewOptionsDefaultsSetArgs{ProjectID: "p1", ViewMode: ptr("LIST")},

	command.CalendarUpdateArgs{ID: "c1", IsVisible: command.Ptr(true)},
	command.CalendarAccountUpdateArgs{ID: "ca1", IsAllCalendars: command.Ptr(false)},

	command.WorkspaceGoalAddArgs{WorkspaceID: "w1", Name: "Ship v2"},
	command.WorkspaceGoalUpdateArgs{ID: "g1", Deadline: ptr("2024-12-31")},
	command.WorkspaceGoalDeleteArgs{ID: "g1"},
	command.WorkspaceGoalProjectAddArgs{GoalID: "g1", ProjectID: "p1"},
	command.WorkspaceGoalProjectRemoveArgs{GoalID: "g1", ProjectID: "p1"},
}
