// Package scoring implements the fixed point rules: the tier function that
// turns a raw evaluation score into a point award, and the threshold table
// that turns a consolidated category mean into a coordinator award.
package scoring

// PointsFor converts a raw evaluation score into a point delta.
// Only top-tier performance earns points; lower scores carry no automatic
// penalty, the rationale text is the record.
func PointsFor(rawScore int) float64 {
	switch rawScore {
	case 10:
		return 3
	case 9:
		return 2
	case 8:
		return 1
	default:
		return 0
	}
}

// AwardForMean maps the mean of a consolidated evaluation category to a
// capped point award for the supervisor.
func AwardForMean(mean float64) float64 {
	switch {
	case mean >= 9:
		return 1.0
	case mean >= 8:
		return 0.5
	default:
		return 0
	}
}
