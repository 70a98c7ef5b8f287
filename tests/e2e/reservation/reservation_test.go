//go:build e2e

package reservation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/tests/common/authtest"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/dbtest"
	"restaurant-api/tests/common/httptest"
	"restaurant-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) futureSlot() (time.Time, time.Time) {
	start := time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)
	return start, start.Add(2 * time.Hour)
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("creates a reservation and returns the stored view", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		reqBody := builder.NewReservationBuilder().
			WithTableID(tableID).
			WithSlot(start, end).
			WithGuests(3).
			WithNotes("window seat").
			BuildCreateDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		notes := "window seat"
		expected := &resdto.ReservationResponse{
			UserName:    "Guest One",
			TableID:     tableID,
			TableNumber: 1,
			StartTime:   start,
			EndTime:     end,
			Guests:      3,
			Status:      "Pending",
			Notes:       &notes,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("rejects an overlapping slot on the same table", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		first := builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		overlapping := builder.NewReservationBuilder().
			WithTableID(tableID).
			WithSlot(start.Add(time.Hour), end.Add(time.Hour)).
			BuildCreateDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, overlapping, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("allows back-to-back slots on the same table", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		first := builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		adjacent := builder.NewReservationBuilder().
			WithTableID(tableID).
			WithSlot(end, end.Add(2*time.Hour)).
			BuildCreateDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, adjacent, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("a second table is free for the same slot", func() {
		t := s.T()

		tableA := dbtest.CreateTestTable(t, s.DB, 1, 4)
		tableB := dbtest.CreateTestTable(t, s.DB, 2, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableA).WithSlot(start, end).BuildCreateDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableB).WithSlot(start, end).BuildCreateDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("rejects parties larger than the table capacity", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		reqBody := builder.NewReservationBuilder().
			WithTableID(tableID).
			WithSlot(start, end).
			WithGuests(5).
			BuildCreateDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// Concurrent create requests for the same slot must produce exactly one
// reservation. The per-table advisory lock is what makes this hold.
func (s *ReservationSuite) TestConcurrentCreation() {
	s.Run("only one of many simultaneous requests wins the slot", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		reqBody := builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO()
		payload, err := json.Marshal(reqBody)
		require.NoError(t, err)

		const workers = 10
		codes := make([]int, workers)
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := range workers {
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				rec := nethttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		var created, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one request should win the slot")
		require.Equal(t, workers-1, conflicted)

		var count int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM reservations WHERE table_id = $1", tableID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func (s *ReservationSuite) TestStatusTransitions() {
	s.Run("cancelling frees the slot for a new booking", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Staff One", "staff1@example.com", "staff")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.ID.String()+"/status",
			reqdto.UpdateReservationStatusRequest{Status: "Cancelled"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("a completed reservation still blocks its slot", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		userID := dbtest.CreateTestUser(t, s.DB, "Guest Two", "guest2@example.com", "customer")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		dbtest.CreateTestReservation(t, s.DB, tableID, userID, start, end, "Completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("status changes require staff", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Guest One", "guest1@example.com", "customer")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.ID.String()+"/status",
			reqdto.UpdateReservationStatusRequest{Status: "Confirmed"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *ReservationSuite) TestOwnership() {
	s.Run("customers cannot read another user's reservation", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Owner", "owner@example.com", "customer")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Other", "other@example.com", "customer")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.ID.String(), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("full updates and deletes are staff operations even for the owner", func() {
		t := s.T()

		tableID := dbtest.CreateTestTable(t, s.DB, 1, 4)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Owner", "owner@example.com", "customer")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Staff One", "staff1@example.com", "staff")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableID).WithSlot(start, end).BuildCreateDTO(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// A status patch through the general update must not let the owner
		// confirm their own booking.
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.ID.String(), map[string]any{"status": "Confirmed"}, ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+created.ID.String(), nil, ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.ID.String(), map[string]any{"status": "Confirmed"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("my reservations lists only the caller's bookings", func() {
		t := s.T()

		tableA := dbtest.CreateTestTable(t, s.DB, 1, 4)
		tableB := dbtest.CreateTestTable(t, s.DB, 2, 4)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Owner", "owner@example.com", "customer")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Other", "other@example.com", "customer")

		start, end := s.futureSlot()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableA).WithSlot(start, end).BuildCreateDTO(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().WithTableID(tableB).WithSlot(start, end).BuildCreateDTO(), otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations/myreservations", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine []resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, tableA, mine[0].TableID)
	})
}
