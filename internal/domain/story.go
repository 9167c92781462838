package domain

import "time"

// ImpactStory is a staff-managed content item shown on the public page
type ImpactStory struct {
	ID        int64
	Title     string
	Content   string
	ImageURL  *string
	Active    bool
	CreatedAt time.Time
}
