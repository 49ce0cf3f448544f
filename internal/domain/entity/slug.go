package entity

import "regexp"

// Field limits shared by the transport validator and the use cases.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is lowercase kebab-case, e.g. "mens-shoes-2024".
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
