package server_test

import (
	"net/http"
	"testing"

	"github.com/fleetgate/fleetgate/server"
	"github.com/stretchr/testify/require"
)

func TestVehicleRoutesRequireSession(t *testing.T) {
	f := newTestFixture(t)

	var upstreamCalled bool
	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	}

	for _, path := range []string{
		"/api/vehicles",
		"/api/vehicles/42",
		"/api/vehicles/42/location",
		"/api/vehicles/42/charge",
	} {
		rec := f.get(t, path)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String(), path)
	}
	require.False(t, upstreamCalled, "guard must short-circuit before any upstream call")
}

func TestVehicleRoutesRejectUnknownSessionCookie(t *testing.T) {
	f := newTestFixture(t)

	rec := f.get(t, server.RouteAPIVehicles, &http.Cookie{Name: "session", Value: "no-such-session"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestVehiclesForwardsBearerToken(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/1/vehicles", r.URL.Path)
		require.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":[{"id":42,"display_name":"Red Car"}],"count":1}`))
	}

	rec := f.get(t, server.RouteAPIVehicles, sessionCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":[{"id":42,"display_name":"Red Car"}],"count":1}`, rec.Body.String())
}

func TestVehicleDataPassesIDAndBodyThrough(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/1/vehicles/42/vehicle_data", r.URL.Path)
		require.Empty(t, r.URL.Query().Get("endpoints"))
		w.Write([]byte(`{"response":{"id":42,"state":"online"}}`))
	}

	rec := f.get(t, "/api/vehicles/42", sessionCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":{"id":42,"state":"online"}}`, rec.Body.String())
}

func TestVehicleLocationRequestsDriveState(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/1/vehicles/42/vehicle_data", r.URL.Path)
		require.Equal(t, "drive_state", r.URL.Query().Get("endpoints"))
		w.Write([]byte(`{"response":{"drive_state":{"latitude":1.5}}}`))
	}

	rec := f.get(t, "/api/vehicles/42/location", sessionCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":{"drive_state":{"latitude":1.5}}}`, rec.Body.String())
}

func TestVehicleChargeRequestsChargeState(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "charge_state", r.URL.Query().Get("endpoints"))
		w.Write([]byte(`{"response":{"charge_state":{"battery_level":80}}}`))
	}

	rec := f.get(t, "/api/vehicles/42/charge", sessionCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":{"charge_state":{"battery_level":80}}}`, rec.Body.String())
}

func TestUpstreamFailureEnvelopes(t *testing.T) {
	// The list endpoint carries the upstream body as details; the
	// per-vehicle endpoints return only the error message.
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"reason":"upstream exploded"}`))
	}

	rec := f.get(t, "/api/vehicles/42", sessionCookie)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to fetch vehicle data"}`, rec.Body.String())

	rec = f.get(t, server.RouteAPIVehicles, sessionCookie)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to fetch vehicles","details":{"reason":"upstream exploded"}}`, rec.Body.String())
}

func TestUpstreamFailureMessagesPerRoute(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestTimeout)
		w.Write([]byte(`{}`))
	}

	rec := f.get(t, "/api/vehicles/42/location", sessionCookie)
	require.Equal(t, http.StatusRequestTimeout, rec.Code)
	require.JSONEq(t, `{"error":"Failed to fetch location"}`, rec.Body.String())

	rec = f.get(t, "/api/vehicles/42/charge", sessionCookie)
	require.Equal(t, http.StatusRequestTimeout, rec.Code)
	require.JSONEq(t, `{"error":"Failed to fetch charge state"}`, rec.Body.String())
}

func TestUpstreamNonJSONErrorBody(t *testing.T) {
	f := newTestFixture(t)
	sessionCookie := f.authenticate(t)

	f.fleetHandler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream said nope"))
	}

	rec := f.get(t, server.RouteAPIVehicles, sessionCookie)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"Failed to fetch vehicles","details":"upstream said nope"}`, rec.Body.String())
}
