package repo

// ProductFilter carries the constraints of a catalog listing query.
type ProductFilter struct {
	Query     string
	Category  string
	MinPrice  *int
	MaxPrice  *int
	MinStock  *int
	MaxStock  *int
	SortBy    string
	SortOrder string
	Offset    *int
	Limit     *int
}

// HasConstraints reports whether any filter besides the free-text query is
// active. When it is, the search fallback chain is bypassed.
func (f ProductFilter) HasConstraints() bool {
	return f.Category != "" || f.MinPrice != nil || f.MaxPrice != nil ||
		f.MinStock != nil || f.MaxStock != nil
}

// SearchOptions carries sort, pagination and exclusion settings for a
// term-based search query.
type SearchOptions struct {
	SortBy    string
	SortOrder string
	Offset    *int
	Limit     *int

	// ExcludeName drops rows whose name contains this substring. Used by
	// the image-scan alternatives lookup to avoid duplicating the primary
	// result set.
	ExcludeName string
}
