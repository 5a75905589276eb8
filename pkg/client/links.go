package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tomnomnom/linkheader"
)

const (
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// Links maps a pagination relation to the page number it points at.
type Links map[string]int

// ParseLinks parses one or more RFC 5988 Link header values. Links that do
// not carry a numeric page query parameter are skipped.
func ParseLinks(headers ...string) (Links, error) {
	links := Links{}
	for _, link := range linkheader.ParseMultiple(headers) {
		if link.Rel == "" {
			continue
		}

		u, err := url.Parse(link.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid link %q: %w", link.URL, err)
		}

		page, err := strconv.Atoi(u.Query().Get("page"))
		if err != nil {
			continue
		}

		links[link.Rel] = page
	}

	return links, nil
}

// Next returns the next page, if the server advertised one.
func (l Links) Next() (int, bool) {
	page, ok := l[RelNext]
	return page, ok
}

// SinglePage reports whether the first and last links point at the same page.
// Missing links compare equal, matching a response without pagination.
func (l Links) SinglePage() bool {
	return l[RelFirst] == l[RelLast]
}
