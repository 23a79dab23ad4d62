package utils

import "strings"

// ExtractResourceID returns the trailing path segment of a FHIR location
// reference, e.g. "Patient/eaqTUQq5pakG8s476u4uh4Q3" -> "eaqTUQq5pakG8s476u4uh4Q3".
// Absolute URLs work the same way since only the last segment is taken.
func ExtractResourceID(locationRef string) string {
	parts := strings.Split(locationRef, "/")
	return parts[len(parts)-1]
}
