package gallery

// collapseForSize decides the collapsed state after a scale tier change.
func collapseForSize(canCollapse bool, size ScaleSize, fit *rowFit) bool {
	if !canCollapse {
		return false
	}
	return !(size == SizeLarge && fit.current() > fit.min)
}

// collapseAfterEnlarge is the state after one Enlarge step. Expansion is only
// allowed at the large tier.
func collapseAfterEnlarge(collapsed, canCollapse bool, size ScaleSize, fit *rowFit) bool {
	if !canCollapse {
		return false
	}
	if fit.requested() >= fit.min && size == SizeLarge {
		return false
	}
	return collapsed
}

// collapseAfterReduce is the state after one Reduce step.
func collapseAfterReduce(collapsed, canCollapse bool, fit *rowFit) bool {
	if !canCollapse {
		return false
	}
	if fit.requested() < fit.min {
		return true
	}
	return collapsed
}
