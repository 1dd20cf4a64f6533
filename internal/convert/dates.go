package convert

import "time"

// autoLayouts is the fixed priority list tried by date auto-detection.
// Ambiguous values like 01/02/2003 are resolved by which layout parses the
// most sampled values, not per row; best-effort, documented as such.
var autoLayouts = []string{
	"2006-01-02", // ISO
	"01/02/2006", // US
	"02/01/2006", // EU
	"02.01.2006", // German
	"01-02-2006",
}

// dateLockThreshold is the fraction of sampled non-empty date values a
// layout must parse to be locked in.
const dateLockThreshold = 0.95

// detectDateLayout picks one layout for the whole file: the first in the
// priority list that parses at least 95% of the non-empty samples. Returns
// false when no layout qualifies (every row will then fail date parsing
// individually).
func detectDateLayout(samples []string) (string, bool) {
	var nonEmpty []string

	for _, s := range samples {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	if len(nonEmpty) == 0 {
		return "", false
	}

	for _, layout := range autoLayouts {
		parsed := 0

		for _, s := range nonEmpty {
			if _, err := time.Parse(layout, s); err == nil {
				parsed++
			}
		}

		if float64(parsed)/float64(len(nonEmpty)) >= dateLockThreshold {
			return layout, true
		}
	}

	return "", false
}
