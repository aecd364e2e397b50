package platform

// Package platform talks to the outside world: it fetches the spreadsheet
// gviz export over HTTP, unwraps its JSON-with-padding envelope, normalizes
// the raw table into the contest hierarchy, and reads/writes frozen data
// snapshots for the offline mode. It also holds small OS helpers.
