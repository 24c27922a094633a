package command

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Args is implemented by every argument shape in this package. The set is
// closed: the unexported method keeps other packages from adding shapes.
type Args interface {
	// Command returns the command name this shape belongs to.
	Command() Type
	// Validate checks required fields and bounded values.
	Validate() error
	isArgs()
}

// Variant is implemented by the shapes of discriminated command families.
type Variant interface {
	Args
	// Variant returns the discriminant value selecting this shape.
	Variant() string
}

type sealed struct{}

func (sealed) isArgs() {}

// Discriminant values of the tagged command families.
const (
	VariantParent  = "parent"
	VariantSection = "section"
	VariantProject = "project"

	VariantAbsolute = "absolute"
	VariantRelative = "relative"
	VariantLocation = "location"

	VariantEmail = "email"
	VariantUser  = "user"
)

// Ptr returns a pointer to v, for optional argument fields.
func Ptr[T any](v T) *T { return &v }

// Due is a task or reminder due date.
type Due struct {
	Date        string `json:"date,omitempty"`
	String      string `json:"string,omitempty"`
	Lang        string `json:"lang,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	IsRecurring *bool  `json:"is_recurring,omitempty"`
}

// Deadline is a task deadline; it never recurs.
type Deadline struct {
	Date string `json:"date"`
	Lang string `json:"lang,omitempty"`
}

// Duration is an estimated task duration.
type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// FileAttachment is the attachment payload of a comment.
type FileAttachment struct {
	FileName     string `json:"file_name,omitempty"`
	FileType     string `json:"file_type,omitempty"`
	FileURL      string `json:"file_url"`
	FileSize     *int   `json:"file_size,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
}

func (c *checker) attachment(field string, a *FileAttachment) {
	if a != nil {
		c.required(field+".file_url", a.FileURL)
	}
}

// withDiscriminant encodes v and adds the "type" discriminant field.
func withDiscriminant(kind string, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	fields["type"] = tag
	return json.Marshal(fields)
}
