//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"school-booking/internal/domain/user"
	"school-booking/internal/handler/api"
	"school-booking/internal/pkg/errs"
	"school-booking/internal/usecase/queries"
	"school-booking/tests/common/httptest"
	queriesmock "school-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.GET("/availability", authMiddleware, s.handler.GetDayAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetDayAvailability() {
	s.Run("success: returns 200 OK with slot grid", func() {
		view := &queries.DayAvailabilityView{
			Date:           "2026-09-07",
			OpenSlots:      []string{"09:00", "09:05"},
			BookedSlots:    []string{"09:00"},
			AvailableSlots: []string{"09:05"},
		}
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "2026-09-07", gomock.Nil()).
			Return(view, nil).Times(1)

		var body map[string]any
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-07", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-09-07", body["date"])
		s.Len(body["openSlots"], 2)
		s.Len(body["availableSlots"], 1)
	})

	s.Run("success: resource filter is forwarded", func() {
		resourceID := uuid.New()
		view := &queries.DayAvailabilityView{
			Date:       "2026-09-07",
			ResourceID: &resourceID,
		}
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "2026-09-07", gomock.Any()).
			DoAndReturn(func(_ any, _ string, got *uuid.UUID) (*queries.DayAvailabilityView, error) {
				s.Require().NotNil(got)
				s.Equal(resourceID, *got)
				return view, nil
			}).Times(1)

		var body map[string]any
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-07&resource_id="+resourceID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resourceID.String(), body["resourceId"])
	})

	s.Run("success: empty slot lists serialize as []", func() {
		view := &queries.DayAvailabilityView{Date: "2026-09-06"}
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "2026-09-06", gomock.Nil()).
			Return(view, nil).Times(1)

		var body map[string]any
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-06", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body["openSlots"])
		s.Empty(body["openSlots"])
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed resource ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-07&resource_id=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed date", func() {
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "07-09-2026", gomock.Nil()).
			Return(nil, errs.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=07-09-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when filtered resource does not exist", func() {
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "2026-09-07", gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-07&resource_id="+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-07", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
