package types

// Filter holds list query parameters: filter[x], sort[x], search, limit, offset/skip, page.
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

// Pagination represents pagination metadata.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// NewFilter returns an empty filter with the default page size.
func NewFilter() Filter {
	return Filter{
		Sort:           make(map[string]string),
		Filter:         make(map[string]interface{}),
		Limit:          100,
		Page:           1,
		WithPagination: true,
	}
}

// With returns a copy of the filter with an extra equality condition.
func (f Filter) With(field string, value interface{}) Filter {
	next := make(map[string]interface{}, len(f.Filter)+1)
	for k, v := range f.Filter {
		next[k] = v
	}
	next[field] = value
	f.Filter = next
	return f
}
