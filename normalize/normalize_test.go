package normalize

import "testing"

func TestKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "NASA", "nasa"},
		{"elides whitespace", "New York", "newyork"},
		{"elides internal whitespace and lowercases", "  New   York  ", "newyork"},
		{"preserves punctuation", "IL-6", "il-6"},
		{"empty stays empty", "", ""},
		{"all whitespace becomes empty", "   \t\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Key(tc.in); got != tc.want {
				t.Errorf("Key(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLower(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"IL-6", "il-6"},
		{"New York", "new york"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Lower(tc.in); got != tc.want {
			t.Errorf("Lower(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{"NASA", "New York", "IL-6", "hello world"}
	for _, in := range inputs {
		once := Key(in)
		twice := Key(once)
		if once != twice {
			t.Errorf("Key not idempotent for %q: Key=%q, Key(Key())=%q", in, once, twice)
		}
	}
}
