package command

import (
	"fmt"

	"github.com/google/uuid"
)

// Command is one intended mutation. It is created by a Builder and never
// changes afterwards.
type Command struct {
	typ    Type
	id     string
	args   Args
	tempID string
}

// Type returns the command name.
func (c Command) Type() Type { return c.typ }

// ID returns the unique command id the server acknowledges in sync_status.
func (c Command) ID() string { return c.id }

// Args returns the validated arguments exactly as supplied.
func (c Command) Args() Args { return c.args }

// TempID returns the temporary id and whether one was supplied.
func (c Command) TempID() (string, bool) { return c.tempID, c.tempID != "" }

// IsZero reports whether c was not produced by a Builder.
func (c Command) IsZero() bool { return c.id == "" }

type wireCommand struct {
	Type   Type   `json:"type"`
	UUID   string `json:"uuid"`
	TempID string `json:"temp_id,omitempty"`
	Args   Args   `json:"args"`
}

// MarshalJSON encodes the command in its wire form. temp_id is omitted when
// no temporary id was supplied.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCommand{Type: c.typ, UUID: c.id, TempID: c.tempID, Args: c.args})
}

// Option customises a single Build call.
type Option func(*buildOptions)

type buildOptions struct {
	tempID    string
	hasTempID bool
}

// WithTempID attaches a temporary id so later commands in the same batch can
// reference the entity this command creates.
func WithTempID(id string) Option {
	return func(o *buildOptions) {
		o.tempID = id
		o.hasTempID = true
	}
}

// Builder produces commands. The zero value draws ids from uuid.NewString.
type Builder struct {
	// NewID returns a fresh command id. It must be safe for concurrent use.
	NewID func() string
}

// NewBuilder returns a builder using random v4 UUIDs.
func NewBuilder() Builder {
	return Builder{NewID: uuid.NewString}
}

func (b Builder) newID() string {
	if b.NewID != nil {
		return b.NewID()
	}
	return uuid.NewString()
}

// Build checks args against the shape registered for name and returns a new
// command. Nothing is produced when the check fails.
func (b Builder) Build(name Type, args Args, opts ...Option) (Command, error) {
	def, err := Lookup(string(name))
	if err != nil {
		return Command{}, err
	}
	if args == nil {
		return Command{}, &SchemaMismatchError{Command: name, Fields: []FieldError{{Field: "args", Reason: "required"}}}
	}
	if got := args.Command(); got != name {
		return Command{}, &SchemaMismatchError{Command: name, Got: got}
	}
	if err := checkVariant(def, args); err != nil {
		return Command{}, err
	}
	if err := args.Validate(); err != nil {
		return Command{}, err
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasTempID && o.tempID == "" {
		return Command{}, fmt.Errorf("%s: %w", name, ErrTempIDEmpty)
	}
	id := b.newID()
	if id == "" {
		return Command{}, fmt.Errorf("%s: id source returned an empty id", name)
	}
	return Command{typ: name, id: id, args: args, tempID: o.tempID}, nil
}

// New builds a command whose name is taken from the argument shape.
func New(args Args, opts ...Option) (Command, error) {
	if args == nil {
		return Command{}, &SchemaMismatchError{Fields: []FieldError{{Field: "args", Reason: "required"}}}
	}
	return Builder{}.Build(args.Command(), args, opts...)
}

// MustNew is New for static command literals; it panics on error.
func MustNew(args Args, opts ...Option) Command {
	cmd, err := New(args, opts...)
	if err != nil {
		panic(err)
	}
	return cmd
}

func checkVariant(def Definition, args Args) error {
	v, isVariant := args.(Variant)
	if len(def.Variants) == 0 {
		if isVariant {
			return &SchemaMismatchError{Command: def.Type, Fields: []FieldError{{Field: "type", Reason: "command takes no variant"}}}
		}
		return nil
	}
	if !isVariant {
		return &SchemaMismatchError{Command: def.Type, Fields: []FieldError{{Field: "type", Reason: "variant required"}}}
	}
	for _, allowed := range def.Variants {
		if v.Variant() == allowed {
			return nil
		}
	}
	return &SchemaMismatchError{Command: def.Type, Fields: []FieldError{{Field: "type", Reason: fmt.Sprintf("unknown variant %q", v.Variant())}}}
}
