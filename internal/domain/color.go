package domain

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"todosync/internal/colors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Color is a color reference as the server sends it: either a numeric
// palette id or a palette name.
type Color struct {
	ID   int
	Name string
}

// ColorID returns a numeric color reference.
func ColorID(id int) Color { return Color{ID: id} }

// Resolve returns the palette entry. Unknown references resolve to the
// palette default.
func (c Color) Resolve() colors.Color {
	if c.Name != "" {
		if p, ok := colors.ByName(c.Name); ok {
			return p
		}
		return colors.Default
	}
	return colors.Lookup(c.ID)
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return strconv.Itoa(c.ID)
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c.Name != "" {
		return json.Marshal(c.Name)
	}
	return []byte(strconv.Itoa(c.ID)), nil
}

func (c *Color) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*c = Color{Name: name}
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	*c = Color{ID: int(n)}
	return nil
}
