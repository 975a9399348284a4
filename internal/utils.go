package internal

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateBatchID creates an identifier for one processed file
// Format: <file base name>_<first 8 chars of a random UUID>
func GenerateBatchID(path string) string {
	id := uuid.NewString()[:8]

	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return id
	}

	return fmt.Sprintf("%s_%s", base, id)
}
