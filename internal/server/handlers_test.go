package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/tasks"
	tu "github.com/luquetti/mis18/internal/testing"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := tu.MustOpenStore(t)
	engine := tasks.NewPartyEngine(st, &tu.StubSearch{})

	cfg := shared.DefaultConfig()
	logger := shared.NewLogger(io.Discard)

	srv := httptest.NewServer(New(cfg, engine, st.Bus(), logger).Handler)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp
}

func TestLoginEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Known Guest Logs In", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/login", map[string]string{"name": "María Gómez"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var user models.User
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if user.ID != "u2" || !user.HasLoggedIn {
			t.Errorf("unexpected login result: %+v", user)
		}
	})

	t.Run("Unknown Guest Is 404", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/login", map[string]string{"name": "Nadie"})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("GET Is Not Allowed", func(t *testing.T) {
		resp := getJSON(t, srv.URL+"/api/login", nil)
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", resp.StatusCode)
		}
	})
}

func TestSeatingEndpoints(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Assign Then Join", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/tables/assign", map[string]string{"userId": "u2", "tableId": "t1"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var seating []models.TableSeating
		getJSON(t, srv.URL+"/api/seating", &seating)
		if len(seating) != 5 {
			t.Fatalf("expected 5 tables, got %d", len(seating))
		}
		if len(seating[0].Occupants) != 1 || seating[0].Occupants[0].ID != "u2" {
			t.Errorf("expected u2 seated at the first table, got %+v", seating[0].Occupants)
		}
	})

	t.Run("Full Table Is 409", func(t *testing.T) {
		for i := 2; i <= 8; i++ {
			postJSON(t, srv.URL+"/api/tables/assign", map[string]string{"userId": fmt.Sprintf("u%d", i), "tableId": "t2"})
		}
		postJSON(t, srv.URL+"/api/tables/assign", map[string]string{"userId": "u1", "tableId": "t2"})

		resp := postJSON(t, srv.URL+"/api/tables/assign", map[string]string{"userId": "u9", "tableId": "t2"})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409 for a full table, got %d", resp.StatusCode)
		}
	})

	t.Run("Unknown Table Is 404", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/tables/assign", map[string]string{"userId": "u3", "tableId": "t99"})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestGenreEndpoints(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Add And List", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genres", map[string]string{"userId": "u2", "genre": "cumbia"})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		var prefs []models.MusicPreference
		getJSON(t, srv.URL+"/api/genres?userId=u2", &prefs)
		if len(prefs) != 1 || prefs[0].Genre != "cumbia" {
			t.Errorf("unexpected picks: %+v", prefs)
		}
	})

	t.Run("Unknown Genre Is 400", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genres", map[string]string{"userId": "u2", "genre": "polka"})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("Duplicate Genre Is 409", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/genres", map[string]string{"userId": "u2", "genre": "CUMBIA"})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", resp.StatusCode)
		}
	})

	t.Run("Trends Aggregate", func(t *testing.T) {
		postJSON(t, srv.URL+"/api/genres", map[string]string{"userId": "u3", "genre": "cumbia"})

		var trends []models.GenreCount
		getJSON(t, srv.URL+"/api/trends", &trends)
		if len(trends) == 0 || trends[0].Name != "CUMBIA" || trends[0].Value != 2 {
			t.Errorf("unexpected trends: %+v", trends)
		}
	})
}

func TestWishlistEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/api/wishlist", map[string]string{"userId": "u3", "itemId": "w1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var items []models.WishlistItem
	getJSON(t, srv.URL+"/api/wishlist", &items)
	if !items[0].IsTaken || items[0].TakenByUserID != "u3" {
		t.Errorf("expected w1 reserved by u3, got %+v", items[0])
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Missing Token Is 401", func(t *testing.T) {
		resp := getJSON(t, srv.URL+"/api/stats", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("Valid Token Returns Stats", func(t *testing.T) {
		var stats models.Stats
		resp := getJSON(t, srv.URL+"/api/stats?token="+shared.DefaultConfig().Party.AdminToken, &stats)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if stats.Total != 9 {
			t.Errorf("expected 9 guests total, got %d", stats.Total)
		}
	})
}

func TestEventsEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Missing Collections Is 400", func(t *testing.T) {
		resp := getJSON(t, srv.URL+"/api/events", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("Write Wakes The Poll", func(t *testing.T) {
		done := make(chan map[string]string, 1)
		go func() {
			var event map[string]string
			getJSON(t, srv.URL+"/api/events?collections=users,songs", &event)
			done <- event
		}()

		// Give the poll a moment to subscribe before writing.
		time.Sleep(100 * time.Millisecond)
		postJSON(t, srv.URL+"/api/login", map[string]string{"name": "Ana Torres"})

		select {
		case event := <-done:
			if event["event"] != "users-changed" {
				t.Errorf("expected users-changed, got %v", event)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("poll never woke up")
		}
	})
}
