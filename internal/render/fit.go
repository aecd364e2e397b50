package render

// SafeAreaMarginRatio is the vertical margin reserved on each side of the
// content area
const SafeAreaMarginRatio = 0.05

// SafeHeight returns the usable content height inside a container of the
// given height
func SafeHeight(containerHeight float32) float32 {
	return containerHeight * (1 - 2*SafeAreaMarginRatio)
}

// FitScale returns the shrink-only scale factor that fits content of the
// given natural height into the safe height. Content that already fits,
// and degenerate inputs, keep scale 1.
func FitScale(safeHeight, naturalHeight float32) float32 {
	if safeHeight <= 0 || naturalHeight <= 0 {
		return 1
	}
	if naturalHeight <= safeHeight {
		return 1
	}
	return safeHeight / naturalHeight
}
