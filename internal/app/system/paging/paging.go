// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is used when the caller does not send a limit.
const DefaultPageSize = 10

// MaxPageSize caps the per-page item count so a single request cannot
// pull the whole collection.
const MaxPageSize = 100

// Params holds 1-indexed offset pagination parameters.
type Params struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Parse reads "page" and "limit" (with "pageSize" as an accepted alias)
// from the request query. Missing or invalid values fall back to page 1
// and DefaultPageSize; limit is clamped to MaxPageSize.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultPageSize}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}

	limit := query.Get(r, "limit")
	if limit == "" {
		limit = query.Get(r, "pageSize")
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// PageInfo is the pagination summary returned with every list response.
type PageInfo struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasMoreNext bool  `json:"hasMoreNext"`
	HasMorePrev bool  `json:"hasMorePrev"`
}

// Info computes the page summary for a total match count.
// totalPages is ceil(total/limit); hasMoreNext/hasMorePrev follow the
// 1-indexed page position.
func (p Params) Info(total int64) PageInfo {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return PageInfo{
		CurrentPage: p.Page,
		PageSize:    p.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasMoreNext: p.Page < totalPages,
		HasMorePrev: p.Page > 1,
	}
}