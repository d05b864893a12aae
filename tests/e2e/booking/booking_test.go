//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"school-booking/internal/domain/schedule"
	"school-booking/internal/domain/user"
	"school-booking/internal/handler/dto/response"
	"school-booking/tests/common/authtest"
	"school-booking/tests/common/builder"
	"school-booking/tests/common/dbtest"
	"school-booking/tests/common/httptest"
	"school-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/availability"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seedSchedule installs all-week operating hours and the default policy so
// flow tests behave the same on any weekday.
func (s *BookingSuite) seedSchedule(t *testing.T) {
	dbtest.SaveOperatingHours(t, s.DB, dbtest.OpenAllWeek("09:00", "18:00"))
	dbtest.SavePolicy(t, s.DB, schedule.DefaultPolicy())
}

// slotStart returns a 10:00 JST start three days out, well inside the
// default advance window.
func slotStart() time.Time {
	jst := time.FixedZone("JST", 9*60*60)
	day := time.Now().In(jst).AddDate(0, 0, 3)
	return time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, jst)
}

// =============================================================================
// TestBookingFlow - availability, creation, conflict, cancellation
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: full flow from availability to cancellation", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Sato-sensei", "math")
		userID := uuid.New()
		token := authtest.BearerToken(t, s.Config.JWT, userID, user.RoleStudent)

		startsAt := slotStart()
		date := startsAt.Format("2006-01-02")

		// The slot grid shows the target slot free before booking.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?date="+date, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var before response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &before))
		require.Equal(t, date, before.Date)
		require.NotEmpty(t, before.OpenSlots)
		require.Contains(t, before.AvailableSlots, "10:00")
		require.Empty(t, before.BookedSlots)

		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(startsAt).
			WithDuration(60).
			BuildCreateRequestDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, resourceID, created.ResourceID)
		require.Equal(t, "Sato-sensei", created.ResourceName)
		require.Equal(t, userID, created.UserID)
		require.Equal(t, "pending", created.Status)
		require.True(t, created.StartsAt.Equal(startsAt))

		// The booked hour and its buffer disappear from the grid.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?date="+date, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var after response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &after))
		require.Contains(t, after.BookedSlots, "10:00")
		require.Contains(t, after.BookedSlots, "10:55")
		require.NotContains(t, after.AvailableSlots, "10:00")
		require.NotContains(t, after.AvailableSlots, "09:45")
		require.Equal(t, before.OpenSlots, after.OpenSlots)

		// Cancelling frees the slot for someone else.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		otherToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)
		reqBody = builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(startsAt).
			WithDuration(60).
			BuildCreateRequestDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: overlapping booking returns the winning reservation", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Suzuki-sensei", "english")
		startsAt := slotStart()

		firstToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)
		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(startsAt).
			WithDuration(60).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var winner response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &winner))

		// A second candidate inside the buffer zone loses with a pointer to
		// the winner.
		secondToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)
		reqBody = builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(startsAt.Add(30 * time.Minute)).
			WithDuration(60).
			BuildCreateRequestDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, secondToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var conflictBody struct {
			Detail struct {
				ConflictReservationID string `json:"conflictReservationId"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &conflictBody))
		require.Equal(t, winner.ID.String(), conflictBody.Detail.ConflictReservationID)

		// A different resource at the same time is unaffected.
		otherResourceID := dbtest.InsertResource(t, s.DB, "Tanaka-sensei", "science")
		reqBody = builder.NewReservationBuilder().
			WithResourceID(otherResourceID).
			WithStartsAt(startsAt).
			WithDuration(60).
			BuildCreateRequestDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, secondToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: policy violations are rejected with a reason", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Sato-sensei", "math")
		token := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)

		// 08:00 is before opening time.
		earlyStart := slotStart().Add(-2 * time.Hour)
		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(earlyStart).
			WithDuration(60).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var violationBody struct {
			Detail struct {
				Violation string `json:"violation"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &violationBody))
		require.Equal(t, "outside_hours", violationBody.Detail.Violation)

		// Beyond the advance window.
		farStart := slotStart().AddDate(0, 0, 120)
		reqBody = builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(farStart).
			WithDuration(60).
			BuildCreateRequestDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &violationBody))
		require.Equal(t, "advance_window", violationBody.Detail.Violation)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Sato-sensei", "math")
		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(slotStart()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestReservationLifecycle - listing, confirmation, cancellation rules
// =============================================================================

func (s *BookingSuite) TestReservationLifecycle() {
	s.Run("Normal case: staff confirms a pending reservation", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Suzuki-sensei", "english")
		studentToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)

		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithStartsAt(slotStart()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, studentToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)

		staffToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStaff)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/confirm", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)

		// Confirming twice conflicts.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/confirm", nil, staffToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: students cannot confirm", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Suzuki-sensei", "english")
		studentID := uuid.New()
		studentToken := authtest.BearerToken(t, s.Config.JWT, studentID, user.RoleStudent)
		reservationID := dbtest.InsertReservation(t, s.DB, resourceID, studentID, slotStart(), 60, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+reservationID.String()+"/confirm", nil, studentToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: cancellation past the deadline is rejected", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Sato-sensei", "math")
		studentID := uuid.New()
		studentToken := authtest.BearerToken(t, s.Config.JWT, studentID, user.RoleStudent)

		// Starts in 12 hours, inside the 24 hour cancellation deadline.
		soonStart := time.Now().Add(12 * time.Hour).Truncate(time.Minute)
		reservationID := dbtest.InsertReservation(t, s.DB, resourceID, studentID, soonStart, 60, "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+reservationID.String()+"/cancel", nil, studentToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		// Staff override ignores the deadline.
		staffToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStaff)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+reservationID.String()+"/cancel", nil, staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Normal case: listing shows only the caller's reservations", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Tanaka-sensei", "science")
		ownerID := uuid.New()
		ownerToken := authtest.BearerToken(t, s.Config.JWT, ownerID, user.RoleStudent)

		dbtest.InsertReservation(t, s.DB, resourceID, ownerID, slotStart(), 60, "pending")
		dbtest.InsertReservation(t, s.DB, resourceID, uuid.New(), slotStart().Add(3*time.Hour), 60, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, resourceID, items[0].ResourceID)
	})

	s.Run("Error case: another student's reservation detail is hidden", func() {
		t := s.T()
		s.seedSchedule(t)

		resourceID := dbtest.InsertResource(t, s.DB, "Tanaka-sensei", "science")
		reservationID := dbtest.InsertReservation(t, s.DB, resourceID, uuid.New(), slotStart(), 60, "pending")

		otherToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStudent)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+reservationID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		// Staff can still see it.
		staffToken := authtest.BearerToken(t, s.Config.JWT, uuid.New(), user.RoleStaff)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+reservationID.String(), nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
