package model

// Package model defines domain data structures used across the app: the
// contest hierarchy parsed from the spreadsheet, slide descriptors, medal
// categories, and export task state. Slides carry denormalized context so
// they can be rendered without global lookups.
