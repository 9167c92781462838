package create_batch_signups

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	base := func() *Request {
		return validRequest(day(2026, time.March, 10))
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *Request) { r.Name = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "name too long",
			mutate:  func(r *Request) { r.Name = strings.Repeat("a", domain.MaxNameLength+1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing email",
			mutate:  func(r *Request) { r.Email = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "email without at sign",
			mutate:  func(r *Request) { r.Email = "jane.example.com" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing phone",
			mutate:  func(r *Request) { r.Phone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing bringing",
			mutate:  func(r *Request) { r.Bringing = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "notes too long",
			mutate:  func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown location",
			mutate:  func(r *Request) { r.Location = ptr.Ptr(domain.Location("Garage")) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no dates",
			mutate:  func(r *Request) { r.Dates = nil },
			wantErr: ErrNoDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDedupDates_FirstOccurrenceWins(t *testing.T) {
	in := []time.Time{
		time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC),
		day(2026, time.March, 12),
		time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC),
		day(2026, time.March, 12),
	}

	out := dedupDates(in)

	require.Len(t, out, 2)
	assert.Equal(t, day(2026, time.March, 10), out[0], "dates are normalized to canonical midday UTC")
	assert.Equal(t, day(2026, time.March, 12), out[1])
}

func TestResolveSlots_MixedConflicts(t *testing.T) {
	now := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	blocked := map[string]struct{}{"2026-03-11": {}}
	occ := domain.BuildOccupancy([]*domain.Signup{
		{Date: day(2026, time.March, 12), Location: domain.LocationBrickBuilding},
		{Date: day(2026, time.March, 12), Location: domain.LocationYellowFarmhouse},
	})

	slots, conflicts := resolveSlots(
		[]time.Time{
			day(2026, time.March, 10), // free
			day(2026, time.March, 11), // blocked
			day(2026, time.March, 12), // fully booked
			day(2026, time.March, 1),  // past
		},
		nil, blocked, occ, now,
	)

	require.Len(t, slots, 1)
	assert.Equal(t, day(2026, time.March, 10), slots[0].Date)

	require.Len(t, conflicts, 3)
	assert.Equal(t, DateConflict{Date: "2026-03-11", Reason: ReasonBlocked}, conflicts[0])
	assert.Equal(t, DateConflict{Date: "2026-03-12", Reason: ReasonFullyBooked}, conflicts[1])
	assert.Equal(t, DateConflict{Date: "2026-03-01", Reason: ReasonPastDate}, conflicts[2])
}
