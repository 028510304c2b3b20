//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"slotbooking/internal/handler/api"
	resdto "slotbooking/internal/handler/dto/response"
	"slotbooking/internal/usecase"
	"slotbooking/tests/common/builder"
	"slotbooking/tests/common/httptest"
	"slotbooking/tests/common/testutil"
	usecasemock "slotbooking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotsHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *usecasemock.MockAvailabilityQueries
	mockBookings     *usecasemock.MockBookingCommands
	mockCancels      *usecasemock.MockCancellationCommands
	handler          *api.SlotsHandler
}

func (s *SlotsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = usecasemock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockBookings = usecasemock.NewMockBookingCommands(s.mockCtrl)
	s.mockCancels = usecasemock.NewMockCancellationCommands(s.mockCtrl)
	s.handler = api.NewSlotsHandler(s.mockAvailability, s.mockBookings, s.mockCancels)

	s.router.GET("/slots", s.handler.List)
	s.router.POST("/slots", s.handler.Create)
	s.router.PATCH("/slots", s.handler.Cancel)
}

func (s *SlotsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotsHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *SlotsHandlerTestSuite) TestList() {
	view := &usecase.AvailabilityView{
		Days: []usecase.DayView{
			{
				Date: "2025-06-20",
				Slots: []usecase.SlotView{
					{RowID: 2, Date: "2025-06-20", Label: "Morning", Capacity: 3, Taken: 1, Available: 2},
				},
			},
		},
		TotalSlots: 1,
	}

	s.Run("success: returns 200 OK with the grouped listing", func() {
		s.mockAvailability.EXPECT().ListOpenSlots(gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")

		var response resdto.ListSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
		s.Equal(1, response.TotalSlots)
		s.Require().Len(response.Dates, 1)
		s.Equal("2025-06-20", response.Dates[0].Date)
		s.Equal(2, response.Dates[0].Slots[0].RowID)
		s.Equal(2, response.Dates[0].Slots[0].Available)
	})

	s.Run("success: phone query switches to history", func() {
		entries := []usecase.HistoryEntry{
			{SignupRowID: 2, SlotRowID: 3, Date: "2025-06-20", SlotLabel: "Morning", Name: "Jane Doe", Category: "general"},
		}
		s.mockAvailability.EXPECT().ListHistory(gomock.Any(), "5551234567").
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?phone=5551234567", nil, "")

		var response resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
		s.Require().Len(response.Signups, 1)
		s.Equal(2, response.Signups[0].SignupRowID)
	})

	s.Run("success: email query switches to history", func() {
		entries := []usecase.HistoryEntry{
			{SignupRowID: 4, SlotRowID: 2, Date: "2025-06-20", SlotLabel: "Morning", Name: "Jane Doe", Category: "general"},
		}
		s.mockAvailability.EXPECT().ListHistoryByEmail(gomock.Any(), "jane@example.com").
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?email=jane%40example.com", nil, "")

		var response resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
		s.Require().Len(response.Signups, 1)
		s.Equal(4, response.Signups[0].SignupRowID)
	})

	s.Run("success: phone wins when both phone and email are given", func() {
		s.mockAvailability.EXPECT().ListHistory(gomock.Any(), "5551234567").
			Return([]usecase.HistoryEntry{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/slots?phone=5551234567&email=jane%40example.com", nil, "")

		var response resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
	})

	s.Run("error: 400 Bad Request for a malformed email", func() {
		s.mockAvailability.EXPECT().ListHistoryByEmail(gomock.Any(), "nonsense").
			Return(nil, usecase.ErrInvalidEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?email=nonsense", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "email")
	})

	s.Run("error: 400 Bad Request for a malformed phone", func() {
		s.mockAvailability.EXPECT().ListHistory(gomock.Any(), "555").
			Return(nil, usecase.ErrInvalidPhone).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?phone=555", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "phone")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockAvailability.EXPECT().ListOpenSlots(gomock.Any()).
			Return(nil, errors.New("row store unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load availability")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SlotsHandlerTestSuite) TestCreate() {
	url := "/slots"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	result := &usecase.BookingResult{
		BookedSlots: []usecase.SlotView{
			{RowID: 2, Date: "2025-06-20", Label: "Morning", Capacity: 3, Taken: 2, Available: 1},
		},
	}

	s.Run("success: returns 200 OK with the booked slots", func() {
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
		s.Require().Len(response.BookedSlots, 1)
		s.Equal(2, response.BookedSlots[0].RowID)
		s.Equal(1, response.BookedSlots[0].Available)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
			{name: "missing category", mutate: testutil.Field("category", nil)},
			{name: "missing slotIds", mutate: testutil.Field("slotIds", nil)},
			{name: "empty slotIds", mutate: testutil.Field("slotIds", []int{})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict carries the per-slot reasons", func() {
		conflictErr := &usecase.ConflictError{
			Conflicts: []usecase.SlotConflict{
				{SlotRowID: 2, Reason: usecase.ConflictSlotFull, Capacity: 3, Taken: 3},
				{SlotRowID: 99, Reason: usecase.ConflictSlotNotFound},
			},
			Bookable: 1,
		}
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "could not be booked")

		var body struct {
			Detail resdto.ConflictDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Require().Len(body.Detail.Conflicts, 2)
		s.Equal(2, body.Detail.Conflicts[0].SlotRowID)
		s.Equal("slot is full", body.Detail.Conflicts[0].Reason)
		s.Equal(3, body.Detail.Conflicts[0].Capacity)
		s.Equal("slot not found", body.Detail.Conflicts[1].Reason)
		s.Equal(1, body.Detail.Bookable)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  usecase.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "validation failed",
			},
			{
				name:           "permit exhausted",
				commandsError:  usecase.ErrTooManyRequests,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Too many booking attempts",
			},
			{
				name:           "store failure",
				commandsError:  usecase.ErrStoreFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("row store unreachable"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *SlotsHandlerTestSuite) TestCancel() {
	url := "/slots"
	reqBody := map[string]any{
		"signupRowId": 2,
		"slotRowId":   3,
		"phone":       "5551234567",
	}

	s.Run("success: returns 200 OK with the cancelled slot", func() {
		view := &usecase.CancelledSlotView{SignupRowID: 2, SlotRowID: 3, Date: "2025-06-20", SlotLabel: "Morning"}
		s.mockCancels.EXPECT().CancelSignup(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Ok)
		s.Equal(2, response.CancelledSlot.SignupRowID)
		s.Equal("Morning", response.CancelledSlot.SlotLabel)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing signupRowId", mutate: testutil.Field("signupRowId", nil)},
			{name: "missing slotRowId", mutate: testutil.Field("slotRowId", nil)},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation error",
				commandsError:  usecase.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "validation failed",
			},
			{
				name:           "signup not found",
				commandsError:  usecase.ErrSignupNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "signup not found",
			},
			{
				name:           "slot not found",
				commandsError:  usecase.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "slot not found",
			},
			{
				name:           "phone mismatch",
				commandsError:  usecase.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Phone does not match",
			},
			{
				name:           "already cancelled",
				commandsError:  usecase.ErrAlreadyCancelled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already cancelled",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("row store unreachable"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCancels.EXPECT().CancelSignup(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
