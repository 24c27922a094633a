// Package resource defines the closed set of resource-type selectors a sync
// request may ask fresh snapshots for.
package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelector is wrapped by every UnknownSelectorError.
var ErrUnknownSelector = errors.New("unknown selector")

// UnknownSelectorError reports a tag outside a closed enumeration.
type UnknownSelectorError struct {
	Kind  string
	Value string
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func (e *UnknownSelectorError) Unwrap() error { return ErrUnknownSelector }

// Type is a resource-type selector tag, sent verbatim on the wire.
type Type string

const (
	All                        Type = "all"
	Items                      Type = "items"
	Projects                   Type = "projects"
	Sections                   Type = "sections"
	Labels                     Type = "labels"
	Filters                    Type = "filters"
	Reminders                  Type = "reminders"
	RemindersLocation          Type = "reminders_location"
	Locations                  Type = "locations"
	Notes                      Type = "notes"
	ProjectNotes               Type = "project_notes"
	User                       Type = "user"
	UserSettings               Type = "user_settings"
	UserPlanLimits             Type = "user_plan_limits"
	NotificationSettings       Type = "notification_settings"
	LiveNotifications          Type = "live_notifications"
	Collaborators              Type = "collaborators"
	CompletedInfo              Type = "completed_info"
	Stats                      Type = "stats"
	DayOrders                  Type = "day_orders"
	Workspaces                 Type = "workspaces"
	WorkspaceUsers             Type = "workspace_users"
	WorkspaceFilters           Type = "workspace_filters"
	WorkspaceGoals             Type = "workspace_goals"
	ViewOptions                Type = "view_options"
	ProjectViewOptionsDefaults Type = "project_view_options_defaults"
	RoleActions                Type = "role_actions"
	Folders                    Type = "folders"
	Calendars                  Type = "calendars"
	CalendarAccounts           Type = "calendar_accounts"
	Suggestions                Type = "suggestions"
	Tooltips                   Type = "tooltips"
)

var known = []Type{
	All, Items, Projects, Sections, Labels, Filters, Reminders, RemindersLocation,
	Locations, Notes, ProjectNotes, User, UserSettings, UserPlanLimits,
	NotificationSettings, LiveNotifications, Collaborators, CompletedInfo, Stats,
	DayOrders, Workspaces, WorkspaceUsers, WorkspaceFilters, WorkspaceGoals,
	ViewOptions, ProjectViewOptionsDefaults, RoleActions, Folders, Calendars,
	CalendarAccounts, Suggestions, Tooltips,
}

var index = func() map[Type]struct{} {
	m := make(map[Type]struct{}, len(known))
	for _, t := range known {
		m[t] = struct{}{}
	}
	return m
}()

// Known returns every selector in declaration order.
func Known() []Type {
	out := make([]Type, len(known))
	copy(out, known)
	return out
}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool {
	_, ok := index[t]
	return ok
}

func (t Type) String() string { return string(t) }

// Parse returns the selector for s. Surrounding whitespace is ignored; case is not.
func Parse(s string) (Type, error) {
	t := Type(strings.TrimSpace(s))
	if !t.Valid() {
		return "", &UnknownSelectorError{Kind: "resource type", Value: s}
	}
	return t, nil
}

// ParseList parses every tag and drops duplicates, keeping first-seen order.
// The first unrecognised tag fails the whole list.
func ParseList(tags []string) ([]Type, error) {
	seen := make(map[Type]bool, len(tags))
	out := make([]Type, 0, len(tags))
	for _, tag := range tags {
		t, err := Parse(tag)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// Strings converts selectors to their wire form.
func Strings(types []Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
