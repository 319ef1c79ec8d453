package types

// CohortBucket is one precomputed aggregate over historical profiles that
// shared a career category and an experience band. SelectionShare is the
// fraction of comparable profiles that chose careers in the category;
// SuccessRate is the fraction of those that reached placement.
type CohortBucket struct {
	Category       string  `json:"category"`
	MinYears       int     `json:"min_years"`
	MaxYears       int     `json:"max_years"`
	SelectionShare float64 `json:"selection_share"` // 0-1
	SuccessRate    float64 `json:"success_rate"`    // 0-1
	SampleSize     int     `json:"sample_size"`
}

// Contains reports whether the bucket's experience band covers years.
func (b *CohortBucket) Contains(years int) bool {
	return years >= b.MinYears && years <= b.MaxYears
}

// CohortStats is the externally precomputed collaborative signal. The engine
// only looks buckets up; it performs no online learning.
type CohortStats struct {
	Buckets []CohortBucket `json:"buckets"`
}

// Lookup finds the bucket for a category and experience. When no band covers
// the given years it falls back to the band nearest to them (deterministic
// nearest-band interpolation); when the category has no buckets at all it
// returns nil.
func (s *CohortStats) Lookup(category string, years int) *CohortBucket {
	if s == nil {
		return nil
	}

	var nearest *CohortBucket
	nearestDist := -1
	for i := range s.Buckets {
		b := &s.Buckets[i]
		if b.Category != category {
			continue
		}
		if b.Contains(years) {
			return b
		}

		dist := b.MinYears - years
		if years > b.MaxYears {
			dist = years - b.MaxYears
		}
		// Ties resolve to the lower band so results are order-independent
		if nearest == nil || dist < nearestDist || (dist == nearestDist && b.MinYears < nearest.MinYears) {
			nearest = b
			nearestDist = dist
		}
	}

	return nearest
}
