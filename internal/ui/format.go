package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Ago formats t relative to now ("3 minutes ago"). Zero times give "".
func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// Bytes formats a size ("1.2 kB").
func Bytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
