package utils

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

var ErrInvalidPage = errors.New("skip must be >= 0 and limit between 1 and 1000")

// Page is an offset window over an id-descending listing.
type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

func (p Page) Validate() error {
	if p.Skip < 0 || p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidPage
	}
	return nil
}

// ParsePage reads skip/limit from the query string, applying defaults
// for absent values.
func ParsePage(r *http.Request) (Page, error) {
	p := DefaultPage()
	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, ErrInvalidPage
		}
		p.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, ErrInvalidPage
		}
		p.Limit = n
	}

	return p, p.Validate()
}

// PagedResponse is the envelope for list endpoints.
type PagedResponse[T any] struct {
	Items []T   `json:"items"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func NewPagedResponse[T any](items []T, p Page, total int64) PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResponse[T]{Items: items, Skip: p.Skip, Limit: p.Limit, Total: total}
}
