//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// TestAPI_FullFlow walks the whole catalogue end to end against a running
// server: movie and room, showtime with its auto-provisioned ticket, an
// order blocking deletes, and the cleanup path once the order is gone.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var movieID, roomID, showtimeID, ticketID, comboID, orderID float64

	t.Run("Step1_CreateMovie", func(t *testing.T) {
		t.Log("STEP 1: POST /api/v1/movies")

		movieReq := map[string]interface{}{
			"title":            "Heat",
			"synopsis":         "A crew of career thieves and the detective chasing them.",
			"rating":           "R",
			"duration_minutes": 170,
			"cast":             "Al Pacino, Robert De Niro",
			"genre":            "Crime",
			"exhibition_start": "2026-09-01T00:00:00Z",
			"exhibition_end":   "2026-12-01T00:00:00Z",
		}

		resp := post(t, baseURL+"/api/v1/movies", movieReq)
		require.Equal(t, 201, resp.StatusCode)

		var movieResp map[string]interface{}
		decodeJSON(t, resp, &movieResp)
		movieID = movieResp["id"].(float64)

		assert.Equal(t, "Heat", movieResp["title"])
		t.Logf("    created movie id=%v", movieID)
	})

	t.Run("Step2_CreateRoom", func(t *testing.T) {
		t.Log("STEP 2: POST /api/v1/rooms")

		roomReq := map[string]interface{}{
			"number":   1,
			"capacity": 6,
			"seats":    [][]int{{0, 0, 0}, {0, 0, 0}},
		}

		resp := post(t, baseURL+"/api/v1/rooms", roomReq)
		require.Equal(t, 201, resp.StatusCode)

		var roomResp map[string]interface{}
		decodeJSON(t, resp, &roomResp)
		roomID = roomResp["id"].(float64)

		t.Logf("    created room id=%v", roomID)
	})

	t.Run("Step3_CreateShowtime", func(t *testing.T) {
		t.Log("STEP 3: POST /api/v1/showtimes")

		showtimeReq := map[string]interface{}{
			"starts_at": "2026-09-05T20:30:00Z",
			"movie_id":  movieID,
			"room_id":   roomID,
		}

		resp := post(t, baseURL+"/api/v1/showtimes", showtimeReq)
		require.Equal(t, 201, resp.StatusCode)

		var showtimeResp map[string]interface{}
		decodeJSON(t, resp, &showtimeResp)
		showtimeID = showtimeResp["id"].(float64)

		t.Logf("    created showtime id=%v", showtimeID)
	})

	t.Run("Step4_ShowtimeHasDefaultTicket", func(t *testing.T) {
		t.Log("STEP 4: GET /api/v1/tickets (default pricing applied)")

		resp := get(t, baseURL+"/api/v1/tickets")
		require.Equal(t, 200, resp.StatusCode)

		var tickets []map[string]interface{}
		decodeJSON(t, resp, &tickets)

		found := false
		for _, ticket := range tickets {
			if ticket["showtime_id"] == showtimeID {
				found = true
				ticketID = ticket["id"].(float64)
				assert.Equal(t, float64(20), ticket["full_price"])
				assert.Equal(t, float64(10), ticket["half_price"])
			}
		}
		require.True(t, found, "showtime should have an auto-provisioned ticket")
		t.Logf("    ticket id=%v full=20 half=10", ticketID)
	})

	t.Run("Step5_DanglingShowtimeRejected", func(t *testing.T) {
		t.Log("STEP 5: POST /api/v1/showtimes with unknown movie")

		showtimeReq := map[string]interface{}{
			"starts_at": "2026-09-05T20:30:00Z",
			"movie_id":  99999,
			"room_id":   roomID,
		}

		resp := post(t, baseURL+"/api/v1/showtimes", showtimeReq)
		assert.Equal(t, 400, resp.StatusCode)

		var errorResp map[string]string
		decodeJSON(t, resp, &errorResp)
		assert.Contains(t, errorResp["message"], "movie not found")
	})

	t.Run("Step6_MovieDeleteDenied", func(t *testing.T) {
		t.Log("STEP 6: DELETE /api/v1/movies (blocked by showtime)")

		resp := del(t, fmt.Sprintf("%s/api/v1/movies/%v", baseURL, movieID))
		assert.Equal(t, 409, resp.StatusCode)

		var errorResp map[string]string
		decodeJSON(t, resp, &errorResp)
		assert.Contains(t, errorResp["message"], "showtime(s)")
		t.Logf("    denied: %v", errorResp["message"])
	})

	t.Run("Step7_CreateComboAndOrder", func(t *testing.T) {
		t.Log("STEP 7: POST /api/v1/combos then /api/v1/orders")

		comboReq := map[string]interface{}{
			"name":        "popcorn + soda",
			"description": "large popcorn with a soda",
			"unit_price":  12.5,
			"quantity":    1,
			"subtotal":    12.5,
		}
		resp := post(t, baseURL+"/api/v1/combos", comboReq)
		require.Equal(t, 201, resp.StatusCode)

		var comboResp map[string]interface{}
		decodeJSON(t, resp, &comboResp)
		comboID = comboResp["id"].(float64)

		orderReq := map[string]interface{}{
			"ordered_at":        "2026-09-05T19:00:00Z",
			"full_ticket_count": 2,
			"half_ticket_count": 0,
			"ticket_id":         ticketID,
			"combo_ids":         []float64{comboID},
			"total":             52.5,
			"payment_method":    "card",
		}
		resp = post(t, baseURL+"/api/v1/orders", orderReq)
		require.Equal(t, 201, resp.StatusCode)

		var orderResp map[string]interface{}
		decodeJSON(t, resp, &orderResp)
		orderID = orderResp["id"].(float64)

		t.Logf("    created combo id=%v, order id=%v", comboID, orderID)
	})

	t.Run("Step8_ShowtimeAndComboDeletesDenied", func(t *testing.T) {
		t.Log("STEP 8: DELETE showtime and combo (blocked by order)")

		resp := del(t, fmt.Sprintf("%s/api/v1/showtimes/%v", baseURL, showtimeID))
		assert.Equal(t, 409, resp.StatusCode)

		var errorResp map[string]string
		decodeJSON(t, resp, &errorResp)
		assert.Contains(t, errorResp["message"], "order(s)")

		resp = del(t, fmt.Sprintf("%s/api/v1/combos/%v", baseURL, comboID))
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("Step9_DeleteOrderThenShowtime", func(t *testing.T) {
		t.Log("STEP 9: DELETE order, then showtime (cascade removes ticket)")

		resp := del(t, fmt.Sprintf("%s/api/v1/orders/%v", baseURL, orderID))
		assert.Equal(t, 204, resp.StatusCode)

		resp = del(t, fmt.Sprintf("%s/api/v1/showtimes/%v", baseURL, showtimeID))
		assert.Equal(t, 204, resp.StatusCode)

		resp = get(t, fmt.Sprintf("%s/api/v1/tickets/%v", baseURL, ticketID))
		assert.Equal(t, 404, resp.StatusCode, "ticket should be cascaded away with its showtime")
	})

	t.Run("Step10_MovieDeleteNowAllowed", func(t *testing.T) {
		t.Log("STEP 10: DELETE movie and room (no dependents left)")

		resp := del(t, fmt.Sprintf("%s/api/v1/movies/%v", baseURL, movieID))
		assert.Equal(t, 204, resp.StatusCode)

		resp = del(t, fmt.Sprintf("%s/api/v1/rooms/%v", baseURL, roomID))
		assert.Equal(t, 204, resp.StatusCode)
	})
}

// Helper functions

func waitForService(t *testing.T) {
	t.Log("waiting for service to be ready...")

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			t.Log("service is ready")
			return
		}
		time.Sleep(1 * time.Second)
	}

	t.Fatal("service did not become ready in time")
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, url string, body interface{}) *http.Response {
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	return resp
}

func del(t *testing.T, url string) *http.Response {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(target)
	if err != nil && resp.StatusCode >= 400 {
		// For error responses, body might not be JSON
		return
	}
	require.NoError(t, err)
}

func TestMain(m *testing.M) {
	fmt.Println("Starting API tests...")
	fmt.Println("Make sure the server and database are running")

	code := m.Run()
	os.Exit(code)
}
