package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an insertion ordered set of query parameters. Only the parameters
// that have been supplied are encoded, zero values included. The zero value
// is an empty query ready to use.
type Query struct {
	keys   []string
	values map[string]string
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: map[string]string{}}
}

// Set sets the value of the key provided, keeping the position of the key if
// it was already set.
func (q *Query) Set(key, value string) *Query {
	if q.values == nil {
		q.values = map[string]string{}
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
	return q
}

// Get returns the value of the key provided and if it was set.
func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	v, ok := q.values[key]
	return v, ok
}

// Has returns true if the key was set.
func (q *Query) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

// Len returns the number of parameters set.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

// String sets a required string parameter.
func (q *Query) String(key, value string) *Query {
	return q.Set(key, value)
}

// Uint64 sets a required numeric parameter.
func (q *Query) Uint64(key string, value uint64) *Query {
	return q.Set(key, strconv.FormatUint(value, 10))
}

// OptString sets the parameter only if value is not nil.
func (q *Query) OptString(key string, value *string) *Query {
	if value != nil {
		q.Set(key, *value)
	}
	return q
}

// OptUint64 sets the parameter only if value is not nil.
func (q *Query) OptUint64(key string, value *uint64) *Query {
	if value != nil {
		q.Uint64(key, *value)
	}
	return q
}

// OptInt32 sets the parameter only if value is not nil.
func (q *Query) OptInt32(key string, value *int32) *Query {
	if value != nil {
		q.Set(key, strconv.FormatInt(int64(*value), 10))
	}
	return q
}

// OptBool sets the parameter only if value is not nil.
func (q *Query) OptBool(key string, value *bool) *Query {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
	return q
}

// Encode returns the query escaped in the order the keys were set.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[k]))
	}
	return b.String()
}
