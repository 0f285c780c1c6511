package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent wizard generation requests. Using a centralized
// singleflight.Group ensures that only one generation job runs for a given
// description while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// WizardGroup deduplicates wizard generation requests keyed by the
// canonicalized player description (see keys.WizardKeyFromDescription).
var WizardGroup singleflight.Group
