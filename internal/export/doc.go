package export

// Package export builds self-contained offline bundles: a zip archive
// holding a frozen data snapshot together with every background and medal
// marker asset, so the ceremony can run from a local copy with no network
// at all. Exports run as background tasks with progress reporting.
