package domain

import (
	"fmt"
	"time"
)

// SettingsID первичный ключ единственной записи настроек
const SettingsID = "main"

// SiteSettings is the singleton record with the displayed "children
// served" range. Purely informational: read by booking and email flows,
// written by staff.
type SiteSettings struct {
	ID          string
	KidCountMin int
	KidCountMax int
	UpdatedAt   time.Time
}

// KidCountDisplay returns the human-readable count, collapsing an
// equal min/max range to a single number ("10" instead of "10-10")
func (s *SiteSettings) KidCountDisplay() string {
	if s.KidCountMin == s.KidCountMax {
		return fmt.Sprintf("%d", s.KidCountMin)
	}
	return fmt.Sprintf("%d-%d", s.KidCountMin, s.KidCountMax)
}
