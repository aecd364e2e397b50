package render

// Package render maps slide descriptors to an abstract tree of typed
// visual blocks and picks the background asset for each slide. It knows
// nothing about any UI toolkit; the ui package materializes the block
// tree into canvas objects. Composing is pure: no I/O, no side effects.
