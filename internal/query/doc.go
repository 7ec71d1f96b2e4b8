// Package query answers list, filter, search, sort and related-content
// questions over an immutable slice of records.
//
// Two free-text paths exist side by side. Filter.Search is a coarse
// case-insensitive substring admit/reject used by filter panels, while
// SearchRanked scores every record with weighted field matches and orders
// by relevance. Run combines them: ranked search first, then the remaining
// filter constraints, then an explicit sort if one is given.
//
// All functions are pure: inputs are never modified and results are new
// slices referencing the same records.
package query
