// Package parse provides candidate date parsers: independent heuristics
// that each turn a short string (a filename stem, a folder name, a raw
// metadata field) into at most one UTC timestamp.
//
// Each parser uses a distinct structural heuristic (bare epoch digits,
// time-based UUID, structured or free-form date text) so callers can
// label the evidence by which heuristic matched.
package parse
