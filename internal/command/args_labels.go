package command

// LabelAddArgs creates a personal label.
type LabelAddArgs struct {
	sealed
	Name       string `json:"name"`
	Color      *int   `json:"color,omitempty"`
	ItemOrder  *int   `json:"item_order,omitempty"`
	IsFavorite *bool  `json:"is_favorite,omitempty"`
}

func (LabelAddArgs) Command() Type { return LabelAdd }

func (a LabelAddArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	return c.err(LabelAdd)
}

// LabelUpdateArgs changes a personal label.
type LabelUpdateArgs struct {
	sealed
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Color      *int    `json:"color,omitempty"`
	ItemOrder  *int    `json:"item_order,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}

func (LabelUpdateArgs) Command() Type { return LabelUpdate }

func (a LabelUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	return c.err(LabelUpdate)
}

// LabelDeleteArgs deletes a personal label. Cascade "all" also strips the
// label from every task.
type LabelDeleteArgs struct {
	sealed
	ID      string  `json:"id"`
	Cascade *string `json:"cascade,omitempty"`
}

func (LabelDeleteArgs) Command() Type { return LabelDelete }

func (a LabelDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.oneOf("cascade", a.Cascade, "none", "all")
	return c.err(LabelDelete)
}

// LabelUpdateOrdersArgs sets item_order for several labels.
type LabelUpdateOrdersArgs struct {
	sealed
	IDOrderMapping map[string]int `json:"id_order_mapping"`
}

func (LabelUpdateOrdersArgs) Command() Type { return LabelUpdateOrders }

func (a LabelUpdateOrdersArgs) Validate() error {
	var c checker
	c.orders("id_order_mapping", a.IDOrderMapping)
	return c.err(LabelUpdateOrders)
}

// LabelRenameArgs renames a shared label on every task carrying it.
type LabelRenameArgs struct {
	sealed
	NameOld string `json:"name_old"`
	NameNew string `json:"name_new"`
}

func (LabelRenameArgs) Command() Type { return LabelRename }

func (a LabelRenameArgs) Validate() error {
	var c checker
	c.required("name_old", a.NameOld)
	c.required("name_new", a.NameNew)
	return c.err(LabelRename)
}

// LabelDeleteOccurrencesArgs removes a shared label from all tasks.
type LabelDeleteOccurrencesArgs struct {
	sealed
	Name string `json:"name"`
}

func (LabelDeleteOccurrencesArgs) Command() Type { return LabelDeleteOccurrences }

func (a LabelDeleteOccurrencesArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	return c.err(LabelDeleteOccurrences)
}

// FilterAddArgs creates a saved filter.
type FilterAddArgs struct {
	sealed
	Name       string `json:"name"`
	Query      string `json:"query"`
	Color      *int   `json:"color,omitempty"`
	ItemOrder  *int   `json:"item_order,omitempty"`
	IsFavorite *bool  `json:"is_favorite,omitempty"`
}

func (FilterAddArgs) Command() Type { return FilterAdd }

func (a FilterAddArgs) Validate() error {
	var c checker
	c.required("name", a.Name)
	c.required("query", a.Query)
	return c.err(FilterAdd)
}

// FilterUpdateArgs changes a saved filter.
type FilterUpdateArgs struct {
	sealed
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Query      *string `json:"query,omitempty"`
	Color      *int    `json:"color,omitempty"`
	ItemOrder  *int    `json:"item_order,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}

func (FilterUpdateArgs) Command() Type { return FilterUpdate }

func (a FilterUpdateArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	c.notBlank("name", a.Name)
	c.notBlank("query", a.Query)
	return c.err(FilterUpdate)
}

// FilterDeleteArgs deletes a saved filter.
type FilterDeleteArgs struct {
	sealed
	ID string `json:"id"`
}

func (FilterDeleteArgs) Command() Type { return FilterDelete }

func (a FilterDeleteArgs) Validate() error {
	var c checker
	c.required("id", a.ID)
	return c.err(FilterDelete)
}

// FilterUpdateOrdersArgs sets item_order for several filters.
type FilterUpdateOrdersArgs struct {
	sealed
	IDOrderMapping map[string]int `json:"id_order_mapping"`
}

func (FilterUpdateOrdersArgs) Command() Type { return FilterUpdateOrders }

func (a FilterUpdateOrdersArgs) Validate() error {
	var c checker
	c.orders("id_order_mapping", a.IDOrderMapping)
	return c.err(FilterUpdateOrders)
}
