package deck

// Package deck expands the normalized contest hierarchy into the flat,
// ordered slide sequence the presentation walks through. Building is pure
// and deterministic: the same hierarchy always yields the same slides.
