package response

import (
	stdjson "encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Kind is the JSON kind a field must have.
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Bool
	StringList
	Object
	// ColorRef accepts a palette id or a palette name.
	ColorRef
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Bool:
		return "bool"
	case StringList:
		return "string list"
	case Object:
		return "object"
	case ColorRef:
		return "number or string"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Field describes one member of a resource object.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool
	// Enum, when set, is the closed set of legal string values.
	Enum []string
	// Bounded limits a Number or Integer field to [Min, Max].
	Bounded  bool
	Min, Max float64
	// Shape checks the members of an Object field. Nil accepts any object.
	Shape *Shape
}

// Shape is the set of fields one resource object must satisfy. Members not
// listed are ignored.
type Shape struct {
	Fields []Field
}

// Issue is one problem found in a payload.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func req(name string, k Kind) Field { return Field{Name: name, Kind: k, Required: true} }
func opt(name string, k Kind) Field { return Field{Name: name, Kind: k} }

func (f Field) null() Field {
	f.Nullable = true
	return f
}

func (f Field) oneOf(values ...string) Field {
	f.Enum = values
	return f
}

func (f Field) between(lo, hi float64) Field {
	f.Bounded, f.Min, f.Max = true, lo, hi
	return f
}

func (f Field) of(s *Shape) Field {
	f.Shape = s
	return f
}

// check appends every issue of obj to issues and returns the result.
func (s *Shape) check(prefix string, obj map[string]any, issues []Issue) []Issue {
	for _, f := range s.Fields {
		path := join(prefix, f.Name)
		v, present := obj[f.Name]
		if !present {
			if f.Required {
				issues = append(issues, Issue{Path: path, Message: "required"})
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				issues = append(issues, Issue{Path: path, Message: "must not be null"})
			}
			continue
		}
		issues = f.checkValue(path, v, issues)
	}
	return issues
}

func (f Field) checkValue(path string, v any, issues []Issue) []Issue {
	bad := func() []Issue {
		return append(issues, Issue{Path: path, Message: fmt.Sprintf("expected %s, got %s", f.Kind, describe(v))})
	}
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return bad()
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return append(issues, Issue{Path: path, Message: fmt.Sprintf("%q is not one of %s", s, strings.Join(f.Enum, ", "))})
		}
	case Number:
		n, ok := number(v)
		if !ok {
			return bad()
		}
		return f.checkRange(path, n, issues)
	case Integer:
		n, ok := number(v)
		if !ok || n != math.Trunc(n) {
			return bad()
		}
		return f.checkRange(path, n, issues)
	case Bool:
		if _, ok := v.(bool); !ok {
			return bad()
		}
	case StringList:
		list, ok := v.([]any)
		if !ok {
			return bad()
		}
		for i, e := range list {
			if _, ok := e.(string); !ok {
				issues = append(issues, Issue{Path: fmt.Sprintf("%s[%d]", path, i), Message: "expected string, got " + describe(e)})
			}
		}
	case Object:
		obj, ok := v.(map[string]any)
		if !ok {
			return bad()
		}
		if f.Shape != nil {
			issues = f.Shape.check(path, obj, issues)
		}
	case ColorRef:
		if _, ok := v.(string); ok {
			return issues
		}
		if _, ok := number(v); !ok {
			return bad()
		}
	}
	return issues
}

func (f Field) checkRange(path string, n float64, issues []Issue) []Issue {
	if f.Bounded && (n < f.Min || n > f.Max) {
		lo := strconv.FormatFloat(f.Min, 'f', -1, 64)
		hi := strconv.FormatFloat(f.Max, 'f', -1, 64)
		return append(issues, Issue{Path: path, Message: fmt.Sprintf("%s is outside %s..%s", strconv.FormatFloat(n, 'f', -1, 64), lo, hi)})
	}
	return issues
}

// number accepts every numeric representation a generic decode can produce.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case stdjson.Number:
		f, err := n.Float64()
		return f, err == nil
	case jsoniter.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	}
	if _, ok := number(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
