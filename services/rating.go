package services

import "math"

// RatingBuckets is the number of discrete buckets used for belt-style
// rendering of a score bar.
const RatingBuckets = 5

// RatingDisplay is the display transform of a scored attribute: a 0-100
// percentage of the scale plus a discrete bucket count for belt-style bars.
// Available is false when the underlying score is absent.
type RatingDisplay struct {
	Available bool    `json:"available"`
	Percent   float64 `json:"percent"`
	Buckets   int     `json:"buckets"`
}

// Rating maps a scored attribute onto a bounded visual scale. A nil value or
// non-positive scale yields a "not available" result rather than an error;
// out-of-range scores are clamped, never rejected.
func Rating(value *float64, maxScale float64) RatingDisplay {
	if value == nil || maxScale <= 0 {
		return RatingDisplay{}
	}

	ratio := *value / maxScale
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	percent := ratio * 100
	buckets := int(math.Ceil(percent / (100 / float64(RatingBuckets))))
	return RatingDisplay{
		Available: true,
		Percent:   percent,
		Buckets:   buckets,
	}
}
