// Package paging implements page-number pagination arithmetic shared by the
// server list endpoint and the client-side pagination state.
package paging

import (
	"net/url"
	"strconv"
)

// TotalPages returns ceil(count/pageSize); 0 when the set is empty.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Links builds the absolute next/previous page URLs for the given request
// URL, or nil at the respective edge. The page_size parameter is preserved
// only when the caller already sent it.
func Links(requestURL *url.URL, page, pageSize, count int) (next, previous *string) {
	total := TotalPages(count, pageSize)

	if page < total {
		next = pageLink(requestURL, page+1)
	}
	if page > 1 && page <= total {
		previous = pageLink(requestURL, page-1)
	}
	return next, previous
}

func pageLink(requestURL *url.URL, page int) *string {
	u := *requestURL
	q := u.Query()
	if page <= 1 {
		// First page is addressed without an explicit page parameter.
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
