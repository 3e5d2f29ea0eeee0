package find

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// Literals.
		{"a.txt", "a.txt", true},
		{"a.txt", "b.txt", false},
		{"", "", true},
		{"", "a", false},

		// Star.
		{"*", "anything", true},
		{"*", "", true},
		{"*.txt", "a.txt", true},
		{"*.txt", "a.txt.bak", false},
		{"*.txt", ".txt", true},
		{"a*", "a", true},
		{"a*", "b", false},
		{"*b*", "abc", true},
		{"f*o*o", "foo", true},
		{"f*o*o", "fxoxo", true},
		{"f*o*o", "fxx", false},
		{"**", "x", true},

		// find's -name '*' matches dotfiles, unlike shell globbing.
		{"*", ".hidden", true},
		{"*.txt", ".secret.txt", true},

		// Question mark matches exactly one byte.
		{"???", "abc", true},
		{"???", "ab", false},
		{"???", "abcd", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"?*", "", false},

		// Anchored, not substring.
		{"b", "abc", false},
		{"ab", "abc", false},

		// Case-sensitive.
		{"A.txt", "a.txt", false},

		// Byte-based matching: a two-byte UTF-8 character needs two '?'.
		{"?", "é", false},
		{"??", "é", true},
		{"*é*", "café.txt", true},

		// '[' is an ordinary byte in this subset.
		{"[ab]", "a", false},
		{"[ab]", "[ab]", true},
		{"x[0-9]", "x[0-9]", true},
	}

	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}
