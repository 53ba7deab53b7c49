package spotify

import (
	"net/url"
	"strconv"
	"strings"
)

// Params builds a query string preserving insertion order. url.Values
// cannot serve here because Encode sorts keys alphabetically, and the
// upstream API's documented layouts fix the parameter order.
type Params struct {
	pairs []string
}

// Add appends a form-encoded key/value pair. Spaces become '+' and
// non-ASCII runes are percent-encoded per UTF-8 byte.
func (p *Params) Add(key, value string) *Params {
	p.pairs = append(p.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
	return p
}

// AddInt appends an integer value.
func (p *Params) AddInt(key string, value int) *Params {
	p.pairs = append(p.pairs, url.QueryEscape(key)+"="+strconv.Itoa(value))
	return p
}

// Encode returns the assembled query string in insertion order.
func (p *Params) Encode() string {
	return strings.Join(p.pairs, "&")
}

// SearchType selects a resource kind for search requests.
type SearchType string

const (
	SearchTypeAlbum  SearchType = "album"
	SearchTypeArtist SearchType = "artist"
)

// SearchQuery describes one catalog search.
type SearchQuery struct {
	Query  string
	Types  []SearchType
	Offset int
	Limit  int
}

// Encode serializes the search with the upstream's fixed layout:
//
//	type=<comma-joined-types>&q=<encoded>&offset=<n>&limit=<n>&market=from_token
//
// Literal '?' characters are stripped from the query before encoding;
// the type list is joined unescaped so commas survive.
func (q SearchQuery) Encode() string {
	types := make([]string, len(q.Types))
	for i, t := range q.Types {
		types[i] = string(t)
	}

	cleaned := strings.ReplaceAll(q.Query, "?", "")

	var sb strings.Builder
	sb.WriteString("type=")
	sb.WriteString(strings.Join(types, ","))
	sb.WriteString("&q=")
	sb.WriteString(url.QueryEscape(cleaned))
	sb.WriteString("&offset=")
	sb.WriteString(strconv.Itoa(q.Offset))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(q.Limit))
	sb.WriteString("&market=from_token")
	return sb.String()
}
