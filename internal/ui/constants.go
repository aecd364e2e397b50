package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	DefaultWindowWidth  float32 = 1280
	DefaultWindowHeight float32 = 720
)

// Typography sizes for the stage, in points at the reference window height
const (
	TitleTextSize    float32 = 64
	SubtitleTextSize float32 = 30
	HeaderTextSize   float32 = 40
	RosterTextSize   float32 = 26
	DetailTextSize   float32 = 18
	CounterTextSize  float32 = 14
	MessageTextSize  float32 = 24
	MedalCountSize   float32 = 56
	MedalLabelSize   float32 = 24
)

// Stage layout
const (
	BlockSpacing      float32 = 24
	RosterLineSpacing float32 = 10
	ColumnGap         float32 = 80
	MedalMarkerSize   float32 = 96
	MedalMarkerLarge  float32 = 140
	CounterMargin     float32 = 16
)

// Entrance animation
const (
	EntranceDuration         = 1200 * time.Millisecond
	EntranceStagger          = 320 * time.Millisecond
	EntranceOffsetY  float32 = 60
	EntranceScale    float32 = 0.9
)

// Startup and loading behavior
const (
	// LoadingSafetyNet forces the start screen even if the initial load
	// has not come back yet
	LoadingSafetyNet = 10 * time.Second

	// AssetReadyGate caps how long the stage waits for background assets
	AssetReadyGate = 3 * time.Second

	// InitialFetchTimeout bounds the first data load
	InitialFetchTimeout = 8 * time.Second
)

// Text fragments
const (
	SlideCounterFormat = "%d / %d"
)
