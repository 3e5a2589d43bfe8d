// Package pagination builds page links and the page-number window shown
// under the feed.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// PageParam is the query key carrying the page number.
const PageParam = "page"

// fullWindow is the largest total for which every page number is listed.
const fullWindow = 5

// Item is one entry of a page window: either a page number or an ellipsis.
type Item struct {
	Page     int
	Ellipsis bool
}

func page(n int) Item { return Item{Page: n} }

var ellipsis = Item{Ellipsis: true}

// Link is a rendered pagination control.
type Link struct {
	Item
	URL      string
	Active   bool
	Disabled bool
}

// Nav holds everything a template needs to draw the pagination bar.
type Nav struct {
	Prev  Link
	Next  Link
	Items []Link
}

// BuildPageURL copies query, sets the page parameter to target and joins it
// to basePath. Other parameters are kept; query itself is not modified.
// The encoded parameters are sorted by key, so their original order is not
// preserved.
func BuildPageURL(basePath string, query url.Values, target int) string {
	q := make(url.Values, len(query)+1)
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set(PageParam, strconv.Itoa(target))
	return basePath + "?" + q.Encode()
}

// SelectPageWindow returns the page numbers and ellipses to display for the
// given current page and page count. Every page is listed when total <= 5;
// otherwise the window is "first … neighbours … last" with the first/last
// pages and ellipses included only when they are not already adjacent.
// current is not range-checked.
func SelectPageWindow(current, total int) []Item {
	items := []Item{}
	if total <= fullWindow {
		for i := 1; i <= total; i++ {
			items = append(items, page(i))
		}
		return items
	}

	if current > 2 {
		items = append(items, page(1))
	}
	if current > 3 {
		items = append(items, ellipsis)
	}
	for i := current - 1; i <= current+1; i++ {
		if i > 0 && i <= total {
			items = append(items, page(i))
		}
	}
	if current < total-2 {
		items = append(items, ellipsis)
	}
	if current < total-1 {
		items = append(items, page(total))
	}
	return items
}

// Build assembles the previous/next controls and the window links.
// Previous is disabled on the first page, next on the last.
func Build(basePath string, query url.Values, current, total int) Nav {
	nav := Nav{
		Prev: Link{
			Item:     page(current - 1),
			URL:      BuildPageURL(basePath, query, current-1),
			Disabled: current == 1,
		},
		Next: Link{
			Item:     page(current + 1),
			URL:      BuildPageURL(basePath, query, current+1),
			Disabled: current == total,
		},
	}
	for _, it := range SelectPageWindow(current, total) {
		l := Link{Item: it}
		if !it.Ellipsis {
			l.URL = BuildPageURL(basePath, query, it.Page)
			l.Active = it.Page == current
		}
		nav.Items = append(nav.Items, l)
	}
	return nav
}

// ParsePage reads a page query value. Missing, malformed and zero values
// all mean page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return 1
	}
	return n
}
