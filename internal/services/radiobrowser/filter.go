package radiobrowser

import (
	"net/url"
	"strconv"
	"strings"
)

// Search modes understood by the directory
const (
	ByTag        = "tag"
	ByName       = "name"
	ByCountry    = "country"
	ByLanguage   = "language"
	ByTopVote    = "topvote"
	ByTopClick   = "topclick"
	ByLastClick  = "lastclick"
	ByLastChange = "lastchange"
)

var orderingModes = map[string]struct{}{
	ByTopVote:    {},
	ByTopClick:   {},
	ByLastClick:  {},
	ByLastChange: {},
}

// Filter describes a single directory query
type Filter struct {
	SearchTerm string
	By         string
	Limit      int
	Offset     int
	Language   string
	HideBroken bool
}

// IsOrdering reports whether By selects a server-side ordering instead of a search
func (f Filter) IsOrdering() bool {
	_, ok := orderingModes[strings.ToLower(f.By)]
	return ok
}

// Path returns the request path relative to the host root
func (f Filter) Path() string {
	by := strings.ToLower(strings.TrimSpace(f.By))
	switch {
	case by == "":
		return "/json/stations"
	case f.IsOrdering():
		return "/json/stations/" + by
	case f.Language != "":
		return "/json/stations/search"
	default:
		return "/json/stations/by" + url.PathEscape(by) + "/" + url.PathEscape(f.SearchTerm)
	}
}

// Query returns the query parameters for the request
func (f Filter) Query() url.Values {
	params := url.Values{}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.HideBroken {
		params.Set("hidebroken", "true")
	}

	by := strings.ToLower(strings.TrimSpace(f.By))
	if by != "" && !f.IsOrdering() && f.Language != "" {
		params.Set(by, f.SearchTerm)
		params.Set("language", f.Language)
	}
	return params
}

// String renders the filter for log lines
func (f Filter) String() string {
	var b strings.Builder
	b.WriteString(f.Path())
	if q := f.Query().Encode(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String()
}
