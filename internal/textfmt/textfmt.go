// Package textfmt holds the small string helpers the CLI uses for messages
// and table cells.
package textfmt

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

const ellipsis = "..."

var slot = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces {0}, {1}, ... with the matching argument. A nil argument
// or a nil pointer, map, func or channel becomes the empty string. Slots without a supplied argument stay as written.
func Format(template string, args ...any) string {
	return slot.ReplaceAllStringFunc(template, func(m string) string {
		n, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || n >= len(args) {
			return m
		}
		if isNil(args[n]) {
			return ""
		}
		return fmt.Sprint(args[n])
	})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Truncate shortens s to at most max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis[:max]
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}
