package keys

import "strings"

// WizardKeyFromDescription produces a canonical cache key for a player's
// wizard description. Behavior: trims, lower-cases and collapses runs of
// whitespace into single underscores. Suitable for stable DB keys.
func WizardKeyFromDescription(description string) string {
	fields := strings.Fields(strings.ToLower(description))
	return strings.Join(fields, "_")
}
