package command

// LiveNotificationsSetLastReadArgs sets the last read notification.
type LiveNotificationsSetLastReadArgs struct {
	sealed
	ID string `json:"id"`
}

func (LiveNotificationsSetLastReadArgs) Command() Type { return LiveNotificationsSetLastRead }

func (a LiveNotificationsSetLastReadArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(LiveNotificationsSetLastRead)
}

// LiveNotificationsMarkReadArgs marks notifications read.
type LiveNotificationsMarkReadArgs struct {
	sealed
	IDs []string `json:"ids"`
}

func (LiveNotificationsMarkReadArgs) Command() Type { return LiveNotificationsMarkRead }

func (a LiveNotificationsMarkReadArgs) Validate() error {
	var c checker
	c.nonEmpty("ids", len(a.IDs))
	return c.err(LiveNotificationsMarkRead)
}

// LiveNotificationsMarkReadAllArgs marks every notification read. It carries
// no fields.
type LiveNotificationsMarkReadAllArgs struct {
	sealed
}

func (LiveNotificationsMarkReadAllArgs) Command() Type { return LiveNotificationsMarkReadAll }

func (LiveNotificationsMarkReadAllArgs) Validate() error { return nil }

// LiveNotificationsMarkUnreadArgs marks notifications unread.
type LiveNotificationsMarkUnreadArgs struct {
	sealed
	IDs []string `json:"ids"`
}

func (LiveNotificationsMarkUnreadArgs) Command() Type { return LiveNotificationsMarkUnread }

func (a LiveNotificationsMarkUnreadArgs) Validate() error {
	var c checker
	c.nonEmpty("ids", len(a.IDs))
	return c.err(LiveNotificationsMarkUnread)
}

// UserUpdateArgs changes account settings. At least one field must be set.
type UserUpdateArgs struct {
	sealed
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
	StartPage    *string `json:"start_page,omitempty"`
	StartDay     *int    `json:"start_day,omitempty"`
	NextWeek     *int    `json:"next_week,omitempty"`
	TimeFormat   *int    `json:"time_format,omitempty"`
	DateFormat   *int    `json:"date_format,omitempty"`
	AutoReminder *int    `json:"auto_reminder,omitempty"`
	Theme        *int    `json:"theme_id,omitempty"`
}

func (UserUpdateArgs) Command() Type { return UserUpdate }

func (a UserUpdateArgs) Validate() error {
	var c checker
	c.anySet("user", a.FullName != nil, a.Email != nil, a.Timezone != nil, a.StartPage != nil,
		a.StartDay != nil, a.NextWeek != nil, a.TimeFormat != nil, a.DateFormat != nil,
		a.AutoReminder != nil, a.Theme != nil)
	c.notBlank("full_name", a.FullName)
	if a.Email != nil {
		c.email("email", *a.Email)
	}
	c.between("start_day", a.StartDay, 1, 7)
	c.between("next_week", a.NextWeek, 1, 7)
	c.between("time_format", a.TimeFormat, 0, 1)
	c.between("date_format", a.DateFormat, 0, 1)
	if a.AutoReminder != nil && *a.AutoReminder < 0 {
		c.fail("auto_reminder", "must not be negative")
	}
	return c.err(UserUpdate)
}

// UserUpdateGoalsArgs changes karma goals.
type UserUpdateGoalsArgs struct {
	sealed
	DailyGoal     *int  `json:"daily_goal,omitempty"`
	WeeklyGoal    *int  `json:"weekly_goal,omitempty"`
	IgnoreDays    []int `json:"ignore_days,omitempty"`
	VacationMode  *bool `json:"vacation_mode,omitempty"`
	KarmaDisabled *bool `json:"karma_disabled,omitempty"`
}

func (UserUpdateGoalsArgs) Command() Type { return UserUpdateGoals }

func (a UserUpdateGoalsArgs) Validate() error {
	var c checker
	c.anySet("goals", a.DailyGoal != nil, a.WeeklyGoal != nil, a.IgnoreDays != nil,
		a.VacationMode != nil, a.KarmaDisabled != nil)
	if a.DailyGoal != nil && *a.DailyGoal < 0 {
		c.fail("daily_goal", "must not be negative")
	}
	if a.WeeklyGoal != nil && *a.WeeklyGoal < 0 {
		c.fail("weekly_goal", "must not be negative")
	}
	for _, d := range a.IgnoreDays {
		if d < 1 || d > 7 {
			c.fail("ignore_days", "must be between 1 and 7")
			break
		}
	}
	return c.err(UserUpdateGoals)
}

// UserSettingsUpdateArgs toggles notification preferences.
type UserSettingsUpdateArgs struct {
	sealed
	ReminderPush          *bool `json:"reminder_push,omitempty"`
	ReminderDesktop       *bool `json:"reminder_desktop,omitempty"`
	ReminderEmail         *bool `json:"reminder_email,omitempty"`
	CompletedSoundDesktop *bool `json:"completed_sound_desktop,omitempty"`
	CompletedSoundMobile  *bool `json:"completed_sound_mobile,omitempty"`
}

func (UserSettingsUpdateArgs) Command() Type { return UserSettingsUpdate }

func (a UserSettingsUpdateArgs) Validate() error {
	var c checker
	c.anySet("settings", a.ReminderPush != nil, a.ReminderDesktop != nil, a.ReminderEmail != nil,
		a.CompletedSoundDesktop != nil, a.CompletedSoundMobile != nil)
	return c.err(UserSettingsUpdate)
}

// UpdateNotificationSettingArgs enables or silences one notification type on
// one delivery service.
type UpdateNotificationSettingArgs struct {
	sealed
	NotificationType string `json:"notification_type"`
	Service          string `json:"service"`
	DontNotify       bool   `json:"dont_notify"`
}

func (UpdateNotificationSettingArgs) Command() Type { return UpdateNotificationSetting }

func (a UpdateNotificationSettingArgs) Validate() error {
	var c checker
	c.required("notification_type", a.NotificationType)
	c.required("service", a.Service)
	if a.Service != "" {
		service := a.Service
		c.oneOf("service", &service, "email", "push")
	}
	return c.err(UpdateNotificationSetting)
}
