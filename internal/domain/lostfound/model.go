package lostfound

import (
	"strings"
	"time"
)

// Kind
// @Enum lost, found
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

// ParseKind: vacío => lost.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lost":
		return KindLost, true
	case "found":
		return KindFound, true
	default:
		return "", false
	}
}

type Post struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Location    string
	ImageRef    string
	AuthorID    string
	CreatedAt   time.Time
}
