// Package layout defines the Layout type shared by the search,
// canonicalization, and scoring packages: a completed exact cover,
// expressed as the ordered list of placements the search chose.
package layout
