package user

import "strings"

// NormalizeSkills trims entries, drops empties and duplicates, and caps the
// list. Order of first appearance is preserved.
func NormalizeSkills(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))

	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)

		if len(out) >= 50 { // cap
			break
		}
	}

	return out
}
