package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pocketclass/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWith(server.URL, server.Client(), 100000), server
}

func TestRegisterSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/register" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var form models.RegistrationForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if form.Email != "amy@example.com" {
			t.Fatalf("unexpected email: %s", form.Email)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Registration successful"})
	}))

	form := models.RegistrationForm{Firstname: "Amy", Lastname: "Pond", Email: "amy@example.com",
		Contact: "012345", Gender: "female", DOB: "1990-01-01", Password: "secret", Role: "student"}
	if err := client.Register(context.Background(), form); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestRegisterUnexpectedMessageIsFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))

	err := client.Register(context.Background(), models.RegistrationForm{})
	if err == nil {
		t.Fatalf("expected failure on unexpected message")
	}
	if err.Error() != "Email already registered" {
		t.Fatalf("expected server message surfaced, got %q", err.Error())
	}
}

func TestLoginAttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["token"] != "tok-123" {
			t.Fatalf("unexpected token in body: %q", body["token"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Token validated"})
	}))

	if err := client.Login(context.Background(), "tok-123"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestEditAvailabilityEmptyPatchSendsNothing(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	err := client.EditAvailability(context.Background(), "a1", "inst-1", models.AvailabilityPatch{})
	if !errors.Is(err, ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no network call, saw %d", hits.Load())
	}
}

func TestEditAvailabilitySendsOnlyChangedFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/editavaliability/a1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		want := map[string]string{"instructorId": "inst-1", "startTime": "11:00"}
		if len(body) != len(want) || body["instructorId"] != "inst-1" || body["startTime"] != "11:00" {
			t.Fatalf("unexpected patch body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Availability updated successfully"})
	}))

	patch := models.AvailabilityPatch{StartTime: "11:00"}
	if err := client.EditAvailability(context.Background(), "a1", "inst-1", patch); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestEditAvailabilityRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Availability updated successfully"})
	}))

	patch := models.AvailabilityPatch{Date: "2030-05-01"}
	if err := client.EditAvailability(context.Background(), "a1", "inst-1", patch); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 attempts, saw %d", hits.Load())
	}
}

func TestBookClassNeverRetries(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Class is full"})
	}))

	err := client.BookClass(context.Background(), BookClassRequest{BookingID: "b1"})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single attempt, saw %d", hits.Load())
	}
	var srvErr *ServerError
	if !errors.As(err, &srvErr) || srvErr.Message != "Class is full" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
}

func TestCancelBookingHitsDeleteRoute(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/cancelbooking/b1/u1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.CancelBooking(context.Background(), "b1", "u1"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestClientRejectionIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "You cannot delete another instructor's availability"})
	}))

	err := client.DeleteAvailability(context.Background(), "a1", "u2")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if hits.Load() != 1 {
		t.Fatalf("4xx should be final, saw %d attempts", hits.Load())
	}
}
