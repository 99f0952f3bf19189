package common

import (
	"github.com/google/uuid"
)

// NewSearchJobID generates a unique search job ID with the "search_" prefix
// Format: search_<uuid>
func NewSearchJobID() string {
	return "search_" + uuid.New().String()
}
