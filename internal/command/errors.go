package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaMismatch indicates arguments that do not fit the command's shape.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrUnknownCommand indicates a command name outside the registry.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrTempIDEmpty indicates a temp id option with an empty value.
	ErrTempIDEmpty = errors.New("temp id must not be empty")
)

// FieldError names one offending argument field.
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string { return f.Field + ": " + f.Reason }

// SchemaMismatchError reports arguments rejected for a command. Got is set
// when the arguments belong to a different command altogether.
type SchemaMismatchError struct {
	Command Type
	Got     Type
	Fields  []FieldError
}

func (e *SchemaMismatchError) Error() string {
	if e.Got != "" && e.Got != e.Command {
		return fmt.Sprintf("schema mismatch for %s: arguments belong to %s", e.Command, e.Got)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("schema mismatch for %s: %s", e.Command, strings.Join(parts, "; "))
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// checker accumulates field errors for one argument shape.
type checker struct {
	fields []FieldError
}

func (c *checker) fail(field, reason string) {
	c.fields = append(c.fields, FieldError{Field: field, Reason: reason})
}

func (c *checker) required(field, v string) {
	if strings.TrimSpace(v) == "" {
		c.fail(field, "required")
	}
}

func (c *checker) nonEmpty(field string, n int) {
	if n == 0 {
		c.fail(field, "must not be empty")
	}
}

func (c *checker) notBlank(field string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		c.fail(field, "must not be blank")
	}
}

func (c *checker) oneOf(field string, v *string, allowed ...string) {
	if v == nil {
		return
	}
	for _, a := range allowed {
		if *v == a {
			return
		}
	}
	c.fail(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

func (c *checker) between(field string, v *int, lo, hi int) {
	if v != nil && (*v < lo || *v > hi) {
		c.fail(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}

func (c *checker) anySet(field string, set ...bool) {
	for _, s := range set {
		if s {
			return
		}
	}
	c.fail(field, "at least one field must be set")
}

func (c *checker) due(field string, d *Due) {
	if d == nil {
		return
	}
	if d.Date == "" && d.String == "" {
		c.fail(field, "date or string required")
	}
}

func (c *checker) duration(field string, d *Duration) {
	if d == nil {
		return
	}
	if d.Amount <= 0 {
		c.fail(field+".amount", "must be positive")
	}
	unit := d.Unit
	c.oneOf(field+".unit", &unit, "minute", "day")
}

func (c *checker) orders(field string, m map[string]int) {
	c.nonEmpty(field, len(m))
	for id := range m {
		if strings.TrimSpace(id) == "" {
			c.fail(field, "contains empty id")
			return
		}
	}
}

func (c *checker) err(t Type) error {
	if len(c.fields) == 0 {
		return nil
	}
	return &SchemaMismatchError{Command: t, Fields: c.fields}
}
