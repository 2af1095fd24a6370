package discovery

// Dedupe removes duplicates from items while preserving first-seen order.
// Equality is decided by the key function (URL string for photos, normalized
// name for establishment names). O(n) with a seen-set.
func Dedupe[T any](items []T, key func(T) string) []T {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupeStrings deduplicates a string slice keyed by identity.
func DedupeStrings(items []string) []string {
	return Dedupe(items, func(s string) string { return s })
}
