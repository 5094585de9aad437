package util

// Uniq returns keys with duplicates removed, keeping first-occurrence order.
// The input is never mutated. If keys has no duplicates it is returned as is.
func Uniq(keys []string) []string {
	if len(keys) < 2 {
		return keys
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	if len(seen) == len(keys) {
		return keys
	}
	out := make([]string, 0, len(seen))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			out = append(out, k)
			delete(seen, k)
		}
	}
	return out
}
