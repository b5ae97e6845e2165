package domain

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultLimit is the page size applied by WithPage when none is given.
const DefaultLimit = 10

// MaxLimit is the largest page Asaas will return.
const MaxLimit = 100

// Params is a create or update payload, encoded as a JSON object.
type Params map[string]any

// Filters is an ordered set of query filters.
// A key keeps the first value it was given; later values for the same key are
// ignored. Encoding follows insertion order so query strings are deterministic.
type Filters struct {
	keys   []string
	values map[string]string
}

// NewFilters builds filters from key, value pairs.
// A trailing key without a value is ignored.
func NewFilters(pairs ...string) Filters {
	var f Filters
	for i := 0; i+1 < len(pairs); i += 2 {
		f = f.Add(pairs[i], pairs[i+1])
	}

	return f
}

// FiltersFromMap builds filters from a map, ordering keys alphabetically.
func FiltersFromMap(m map[string]string) Filters {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var f Filters
	for _, k := range keys {
		f = f.Add(k, m[k])
	}

	return f
}

// Add returns a copy of f with key set, unless key is already present.
func (f Filters) Add(key, value string) Filters {
	if _, ok := f.values[key]; ok {
		return f
	}

	out := f.clone()
	out.keys = append(out.keys, key)
	out.values[key] = value

	return out
}

// Merge returns a copy of f extended with the keys of other that f lacks.
// Keys already in f win.
func (f Filters) Merge(other Filters) Filters {
	out := f
	for _, k := range other.keys {
		out = out.Add(k, other.values[k])
	}

	return out
}

// WithPage returns a copy of f with offset and limit set.
// The limit is clamped to 1..MaxLimit; zero or negative means DefaultLimit.
func (f Filters) WithPage(offset, limit int) Filters {
	if offset < 0 {
		offset = 0
	}

	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return f.Add("offset", strconv.Itoa(offset)).Add("limit", strconv.Itoa(limit))
}

// Get returns the value for key.
func (f Filters) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the filter keys in insertion order.
func (f Filters) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Len returns the number of filters.
func (f Filters) Len() int {
	return len(f.keys)
}

// Encode serializes the filters as a query string in insertion order.
func (f Filters) Encode() string {
	if len(f.keys) == 0 {
		return ""
	}

	var b strings.Builder
	for i, k := range f.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.values[k]))
	}

	return b.String()
}

func (f Filters) clone() Filters {
	out := Filters{
		keys:   make([]string, len(f.keys), len(f.keys)+1),
		values: make(map[string]string, len(f.keys)+1),
	}
	copy(out.keys, f.keys)
	for k, v := range f.values {
		out.values[k] = v
	}

	return out
}
