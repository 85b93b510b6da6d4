package combo

// ClickWeight returns the seconds contributed by the n-th click (1-based) of a combo
func ClickWeight(n int) int {
	switch {
	case n <= 0:
		return 0
	case n <= tierOneLastClick:
		return tierOneWeight
	case n <= tierTwoLastClick:
		return tierTwoWeight
	default:
		return tierThreeWeight
	}
}

// TimeReduction returns the grow seconds removed by a combo of the given size.
// It is the sum of ClickWeight(1..clicks) in closed form, so
// TimeReduction(9)=9, TimeReduction(10)=11, TimeReduction(29)=49, TimeReduction(30)=52.
func TimeReduction(clicks int) int {
	switch {
	case clicks <= 0:
		return 0
	case clicks <= tierOneLastClick:
		return clicks * tierOneWeight
	case clicks <= tierTwoLastClick:
		return tierOneLastClick*tierOneWeight + (clicks-tierOneLastClick)*tierTwoWeight
	default:
		return tierOneLastClick*tierOneWeight +
			(tierTwoLastClick-tierOneLastClick)*tierTwoWeight +
			(clicks-tierTwoLastClick)*tierThreeWeight
	}
}

// CurrentWeight is the weight the next click of a combo of the given size would
// be worth once it lands, i.e. the multiplier shown next to a running combo.
func CurrentWeight(clicks int) int {
	if clicks <= 0 {
		return tierOneWeight
	}
	return ClickWeight(clicks)
}
