package command

var locTriggers = []string{"on_enter", "on_leave"}

// ReminderAbsoluteArgs adds a reminder firing at a fixed due date.
type ReminderAbsoluteArgs struct {
	sealed
	ItemID    string `json:"item_id"`
	Due       Due    `json:"due"`
	NotifyUID string `json:"notify_uid,omitempty"`
}

func (ReminderAbsoluteArgs) Command() Type   { return ReminderAdd }
func (ReminderAbsoluteArgs) Variant() string { return VariantAbsolute }

func (a ReminderAbsoluteArgs) Validate() error {
	var c checker
	c.required("item_id", a.ItemID)
	c.due("due", &a.Due)
	return c.err(ReminderAdd)
}

func (a ReminderAbsoluteArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderAbsoluteArgs
	return withDiscriminant(VariantAbsolute, plain(a))
}

// ReminderRelativeArgs adds a reminder firing a number of minutes before the
// task's due time.
type ReminderRelativeArgs struct {
	sealed
	ItemID       string `json:"item_id"`
	MinuteOffset int    `json:"minute_offset"`
	NotifyUID    string `json:"notify_uid,omitempty"`
}

func (ReminderRelativeArgs) Command() Type   { return ReminderAdd }
func (ReminderRelativeArgs) Variant() string { return VariantRelative }

func (a ReminderRelativeArgs) Validate() error {
	var c checker
	c.required("item_id", a.ItemID)
	if a.MinuteOffset < 0 {
		c.fail("minute_offset", "must not be negative")
	}
	return c.err(ReminderAdd)
}

func (a ReminderRelativeArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderRelativeArgs
	return withDiscriminant(VariantRelative, plain(a))
}

// ReminderLocationArgs adds a geofenced reminder.
type ReminderLocationArgs struct {
	sealed
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	LocLat     string `json:"loc_lat"`
	LocLong    string `json:"loc_long"`
	LocTrigger string `json:"loc_trigger"`
	Radius     *int   `json:"radius,omitempty"`
	NotifyUID  string `json:"notify_uid,omitempty"`
}

func (ReminderLocationArgs) Command() Type   { return ReminderAdd }
func (ReminderLocationArgs) Variant() string { return VariantLocation }

func (a ReminderLocationArgs) Validate() error {
	var c checker
	c.required("item_id", a.ItemID)
	c.location(a.Name, a.LocLat, a.LocLong, a.LocTrigger, a.Radius)
	return c.err(ReminderAdd)
}

func (a ReminderLocationArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderLocationArgs
	return withDiscriminant(VariantLocation, plain(a))
}

func (c *checker) location(name, lat, long, trigger string, radius *int) {
	c.required("name", name)
	c.required("loc_lat", lat)
	c.required("loc_long", long)
	c.required("loc_trigger", trigger)
	if trigger != "" {
		c.oneOf("loc_trigger", &trigger, locTriggers...)
	}
	if radius != nil && *radius <= 0 {
		c.fail("radius", "must be positive")
	}
}

// ReminderUpdateAbsoluteArgs changes an absolute reminder.
type ReminderUpdateAbsoluteArgs struct {
	sealed
	ID        string  `json:"id"`
	Due       *Due    `json:"due,omitempty"`
	NotifyUID *string `json:"notify_uid,omitempty"`
}

func (ReminderUpdateAbsoluteArgs) Command() Type   { return ReminderUpdate }
func (ReminderUpdateAbsoluteArgs) Variant() string { return VariantAbsolute }

func (a ReminderUpdateAbsoluteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.due("due", a.Due)
	return c.err(ReminderUpdate)
}

func (a ReminderUpdateAbsoluteArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderUpdateAbsoluteArgs
	return withDiscriminant(VariantAbsolute, plain(a))
}

// ReminderUpdateRelativeArgs changes a relative reminder.
type ReminderUpdateRelativeArgs struct {
	sealed
	ID           string  `json:"id"`
	MinuteOffset *int    `json:"minute_offset,omitempty"`
	NotifyUID    *string `json:"notify_uid,omitempty"`
}

func (ReminderUpdateRelativeArgs) Command() Type   { return ReminderUpdate }
func (ReminderUpdateRelativeArgs) Variant() string { return VariantRelative }

func (a ReminderUpdateRelativeArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	if a.MinuteOffset != nil && *a.MinuteOffset < 0 {
		c.fail("minute_offset", "must not be negative")
	}
	return c.err(ReminderUpdate)
}

func (a ReminderUpdateRelativeArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderUpdateRelativeArgs
	return withDiscriminant(VariantRelative, plain(a))
}

// ReminderUpdateLocationArgs changes a location reminder.
type ReminderUpdateLocationArgs struct {
	sealed
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	LocLat     *string `json:"loc_lat,omitempty"`
	LocLong    *string `json:"loc_long,omitempty"`
	LocTrigger *string `json:"loc_trigger,omitempty"`
	Radius     *int    `json:"radius,omitempty"`
}

func (ReminderUpdateLocationArgs) Command() Type   { return ReminderUpdate }
func (ReminderUpdateLocationArgs) Variant() string { return VariantLocation }

func (a ReminderUpdateLocationArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	c.notBlank("loc_lat", a.LocLat)
	c.notBlank("loc_long", a.LocLong)
	c.oneOf("loc_trigger", a.LocTrigger, locTriggers...)
	if a.Radius != nil && *a.Radius <= 0 {
		c.fail("radius", "must be positive")
	}
	return c.err(ReminderUpdate)
}

func (a ReminderUpdateLocationArgs) MarshalJSON() ([]byte, error) {
	type plain ReminderUpdateLocationArgs
	return withDiscriminant(VariantLocation, plain(a))
}

// ReminderDeleteArgs deletes a reminder of any kind.
type ReminderDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (ReminderDeleteArgs) Command() Type { return ReminderDelete }

func (a ReminderDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(ReminderDelete)
}
