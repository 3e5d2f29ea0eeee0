package find

// Match reports whether name matches pattern under the fnmatch subset -name
// relies on: '*' matches any run of bytes, including none and including a
// leading dot (find's -name '*' matches dotfiles), '?' matches exactly one
// byte, and every other byte matches itself. '[' has no special meaning here.
// Matching is case-sensitive and anchored: the whole basename must match.
// An empty pattern matches only the empty name.
//
// Matching is byte-based, as in the C locale: a multibyte UTF-8 character
// needs one '?' per encoded byte, where fnmatch in a UTF-8 locale would
// consume it with a single '?'.
func Match(pattern, name string) bool {
	var p, n int
	starP, starN := -1, -1
	for n < len(name) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			// Record the star and try the zero-width match first;
			// starN marks where to resume if that fails.
			starP, starN = p, n
			p++
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == name[n]):
			p++
			n++
		case starP >= 0:
			// Backtrack: let the last star consume one more byte.
			starN++
			p = starP + 1
			n = starN
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
