package main

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantNil bool
		wantErr bool
	}{
		{in: "", wantNil: true},
		{in: "berry_red", want: 30},
		{in: "41", want: 41},
		{in: " charcoal ", want: 47},
		{in: "99", wantErr: true},
		{in: "plaid", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if tc.wantNil {
			if got != nil {
				t.Fatalf("%q: expected nil, got %d", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Fatalf("%q: got %v want %d", tc.in, got, tc.want)
		}
	}
}
