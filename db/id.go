package db

import (
	"github.com/google/uuid"
	"librarygql/models"
	"strings"
)

// NewId returns a random 32 character hex id.
func NewId() models.Id {
	return models.Id(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
