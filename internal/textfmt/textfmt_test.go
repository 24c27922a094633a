package textfmt

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"number and bool", "Works with number {0}, and bool {1}", []any{1, true}, "Works with number 1, and bool true"},
		{"nil argument", "a{0}b", []any{nil}, "ab"},
		{"typed nil pointer", "a{0}b", []any{(*int)(nil)}, "ab"},
		{"nil map", "a{0}b", []any{map[string]int(nil)}, "ab"},
		{"missing argument", "{0} and {1}", []any{"x"}, "x and {1}"},
		{"no arguments", "{0}", nil, "{0}"},
		{"repeated slot", "{0}{0}", []any{"ha"}, "haha"},
		{"not a slot", "{a} {}", []any{"x"}, "{a} {}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.template, tc.args...); got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdefghij", 5); got != "ab..." {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("short", 5); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("héllo wörld", 8); got != "héllo..." {
		t.Fatalf("Truncate should count runes, got %q", got)
	}
	if got := Truncate("abcdef", 2); got != ".." {
		t.Fatalf("Truncate = %q", got)
	}
}
