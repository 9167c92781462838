package models

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// BlockedDateResponse заблокированная дата в ответе API
type BlockedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainBlockedDate конвертирует domain.BlockedDate в ответ API
func FromDomainBlockedDate(b *domain.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:     b.ID,
		Date:   domain.DayKey(b.Date),
		Reason: b.Reason,
	}
}

// FromDomainBlockedDateList конвертирует список заблокированных дат
func FromDomainBlockedDateList(dates []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{BlockedDates: make([]BlockedDateResponse, 0, len(dates))}
	for _, b := range dates {
		resp.BlockedDates = append(resp.BlockedDates, FromDomainBlockedDate(b))
	}
	return resp
}
