package utils

import (
	"reflect"
	"strings"
	"time"
)

// Accepted timestamp layouts. The dashboard historically sent naive ISO
// strings without an offset; those are taken as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTime renders a timestamp as the canonical ISO-8601 UTC string stored
// and served everywhere.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTime parses any accepted timestamp layout, normalizing to UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// IsValidTimestamp reports whether s parses under any accepted layout.
func IsValidTimestamp(s string) bool {
	_, ok := ParseTime(s)
	return ok
}

// Sanitize trims whitespace on every exported string field of the struct
// pointed to by v, including *string fields. Non-struct values are ignored.
func Sanitize(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))
		case reflect.Pointer:
			if field.Elem().Kind() == reflect.String && !field.IsNil() {
				field.Elem().SetString(strings.TrimSpace(field.Elem().String()))
			}
		}
	}
}
