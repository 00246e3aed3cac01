package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type BySession struct {
	SessionID uuid.UUID
}

func (s BySession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
