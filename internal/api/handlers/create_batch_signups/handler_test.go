package create_batch_signups

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	createBatchSignups "github.com/chrismblake-alt/meal-signup-app/internal/usecase/create_batch_signups"
)

type fakeUseCase struct {
	req  *createBatchSignups.Request
	resp *createBatchSignups.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBatchSignups.Request) (*createBatchSignups.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signups/batch", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	useCase := &fakeUseCase{
		resp: &createBatchSignups.Response{
			CreatedCount: 2,
			Assignments: []createBatchSignups.Assignment{
				{
					ID:          1,
					Date:        time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
					Location:    domain.LocationBrickBuilding,
					CancelToken: "token-1",
				},
				{
					ID:          2,
					Date:        time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC),
					Location:    domain.LocationYellowFarmhouse,
					CancelToken: "token-2",
				},
			},
		},
	}

	rec := doRequest(t, useCase, `{
		"name": "Jane Donor",
		"email": "jane@example.com",
		"phone": "203-555-0101",
		"bringing": "Pizza",
		"dates": ["2026-03-10", "2026-03-11"],
		"location": "Brick Building"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBatchSignupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.CreatedCount)
	require.Len(t, resp.Assignments, 2)
	assert.Equal(t, "2026-03-10", resp.Assignments[0].Date)
	assert.Equal(t, "Brick Building", resp.Assignments[0].Location)
	assert.Equal(t, "token-1", resp.Assignments[0].CancelToken)

	// Даты и площадка дошли до use case разобранными
	require.NotNil(t, useCase.req)
	require.Len(t, useCase.req.Dates, 2)
	require.NotNil(t, useCase.req.Location)
	assert.Equal(t, domain.LocationBrickBuilding, *useCase.req.Location)
}

func TestHandle_BadDateFormat(t *testing.T) {
	useCase := &fakeUseCase{}

	rec := doRequest(t, useCase, `{
		"name": "Jane Donor",
		"email": "jane@example.com",
		"phone": "203-555-0101",
		"bringing": "Pizza",
		"dates": ["03/10/2026"]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDate)
	assert.Nil(t, useCase.req, "use case is not reached")
}

func TestHandle_InvalidJSON(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidRequestBody)
}

func TestHandle_ConflictWithFailingDates(t *testing.T) {
	useCase := &fakeUseCase{
		err: &createBatchSignups.DateConflictError{
			Conflicts: []createBatchSignups.DateConflict{
				{Date: "2026-03-10", Reason: createBatchSignups.ReasonFullyBooked},
				{Date: "2026-03-11", Reason: createBatchSignups.ReasonBlocked},
			},
		},
	}

	rec := doRequest(t, useCase, `{
		"name": "Jane Donor",
		"email": "jane@example.com",
		"phone": "203-555-0101",
		"bringing": "Pizza",
		"dates": ["2026-03-10", "2026-03-11"]
	}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgDatesUnavailable, resp.Error)
	require.Len(t, resp.FailingDates, 2)
	assert.Equal(t, FailingDate{Date: "2026-03-10", Reason: createBatchSignups.ReasonFullyBooked}, resp.FailingDates[0])
	assert.Equal(t, FailingDate{Date: "2026-03-11", Reason: createBatchSignups.ReasonBlocked}, resp.FailingDates[1])
}

func TestHandle_ValidationError(t *testing.T) {
	useCase := &fakeUseCase{err: createBatchSignups.ErrInvalidInput}

	rec := doRequest(t, useCase, `{
		"name": "",
		"email": "jane@example.com",
		"phone": "203-555-0101",
		"bringing": "Pizza",
		"dates": ["2026-03-10"]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidInput)
}
