// Package docs implements the domain repositories on top of the generic
// document store. Collection and field names match the store layout the
// mobile client established (camelCase fields, deterministic ids).
package docs

import (
	"time"

	"encoresocial/internal/docstore"
)

// Collection names.
const (
	ColUsers             = "users"
	ColFriendRequests    = "friend_requests"
	ColFriendships       = "friendships"
	ColUserAttendance    = "user_attendance"
	ColConcertAttendance = "concert_attendance"
	ColConcerts          = "concerts"
)

func str(d docstore.Doc, path string) string {
	v, ok := docstore.Lookup(d, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func strPtr(d docstore.Doc, path string) *string {
	v, ok := docstore.Lookup(d, path)
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func strSlice(d docstore.Doc, path string) []string {
	v, ok := docstore.Lookup(d, path)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// timestamps are stored as RFC3339 strings.
func timeVal(d docstore.Doc, path string) time.Time {
	s := str(d, path)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
