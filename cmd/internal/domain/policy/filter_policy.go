package policy

import "bizindustry/cmd/internal/domain/entity"

// ApplyFilter returns the companies matching f, in their original order.
//
// The input slice and its records are never modified. FilterActive and
// FilterSeeking partition the input: every company lands in exactly one.
func ApplyFilter(companies []*entity.Company, f entity.Filter) []*entity.Company {
	out := make([]*entity.Company, 0, len(companies))
	for _, c := range companies {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func Matches(c *entity.Company, f entity.Filter) bool {
	switch f {
	case entity.FilterActive:
		return c.Status().IsActive()
	case entity.FilterSeeking:
		return !c.Status().IsActive()
	default:
		return true
	}
}

// CountByFilter reports how many companies each filter would keep.
func CountByFilter(companies []*entity.Company) map[entity.Filter]int {
	counts := make(map[entity.Filter]int, len(entity.Filters))
	for _, f := range entity.Filters {
		counts[f] = 0
	}
	for _, c := range companies {
		counts[entity.FilterAll]++
		if c.Status().IsActive() {
			counts[entity.FilterActive]++
		} else {
			counts[entity.FilterSeeking]++
		}
	}
	return counts
}
