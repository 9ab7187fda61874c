package helper

import (
	"net/url"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Pagination struct {
	Page  int64
	Limit int64
}

// ResolvePagination reads the page and limit query parameters, falling
// back to page=1 and limit=10 when they are absent, non-numeric or below
// one. Limit is capped at 100 so a single request cannot drag the whole
// collection through the wire.
func ResolvePagination(query url.Values) Pagination {
	page, err := strconv.ParseInt(query.Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.ParseInt(query.Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}
