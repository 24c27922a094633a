// Package colors resolves the numeric color ids carried by projects, labels
// and filters to display values. Lookup never fails: ids outside the table
// resolve to Default.
package colors

import "sort"

// Color is one entry of the palette.
type Color struct {
	ID   int
	Name string
	Hex  string
}

// Default is returned for ids the palette does not know.
var Default = Color{ID: 47, Name: "charcoal", Hex: "#808080"}

var palette = map[int]Color{
	30: {30, "berry_red", "#b8255f"},
	31: {31, "red", "#db4035"},
	32: {32, "orange", "#ff9933"},
	33: {33, "yellow", "#fad000"},
	34: {34, "olive_green", "#afb83b"},
	35: {35, "lime_green", "#7ecc49"},
	36: {36, "green", "#299438"},
	37: {37, "mint_green", "#6accbc"},
	38: {38, "teal", "#158fad"},
	39: {39, "sky_blue", "#14aaf5"},
	40: {40, "light_blue", "#96c3eb"},
	41: {41, "blue", "#4073ff"},
	42: {42, "grape", "#884dff"},
	43: {43, "violet", "#af38eb"},
	44: {44, "lavender", "#eb96eb"},
	45: {45, "magenta", "#e05194"},
	46: {46, "salmon", "#ff8d85"},
	47: {47, "charcoal", "#808080"},
	48: {48, "grey", "#b8b8b8"},
	49: {49, "taupe", "#ccac93"},
}

// Lookup returns the palette entry for id, or Default.
func Lookup(id int) Color {
	if c, ok := palette[id]; ok {
		return c
	}
	return Default
}

// Known reports whether id is in the palette.
func Known(id int) bool {
	_, ok := palette[id]
	return ok
}

// ByName finds a palette entry by its name.
func ByName(name string) (Color, bool) {
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// All returns the palette ordered by id.
func All() []Color {
	out := make([]Color, 0, len(palette))
	for _, c := range palette {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
