package domain

import "time"

// BlockedDate is a calendar day staff have excluded from booking for
// all locations, independent of any signups on that day
type BlockedDate struct {
	ID        int64
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}
