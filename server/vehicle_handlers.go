package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorEnvelope is the stable error shape returned to the browser when
// an upstream Fleet API call does not succeed. Details carries the raw
// upstream body on the list endpoint only; the per-vehicle endpoints
// return the bare error message, matching what the existing browser
// client parses.
type errorEnvelope struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// VehiclesHandler proxies the vehicle list.
func (s *Server) VehiclesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		log.Info().Msg("fetching vehicles from Fleet API")
		status, body, err := s.fleet.Vehicles(r.Context(), session.AccessToken)
		if err != nil {
			log.Error().Err(err).Msg("vehicles: upstream request failed")
			respondJSON(w, http.StatusBadGateway, errorEnvelope{Error: "Failed to fetch vehicles"})
			return
		}

		log.Info().Int("status", status).Str("body", string(body)).Msg("Fleet API response")

		if !statusOK(status) {
			respondJSON(w, status, errorEnvelope{
				Error:   "Failed to fetch vehicles",
				Details: rawDetails(body),
			})
			return
		}

		writeUpstreamBody(w, status, body)
	}
}

// VehicleDataHandler proxies the full data payload for one vehicle.
func (s *Server) VehicleDataHandler() http.HandlerFunc {
	return s.vehicleDataHandler("Failed to fetch vehicle data")
}

// VehicleLocationHandler proxies only the drive state of one vehicle.
func (s *Server) VehicleLocationHandler() http.HandlerFunc {
	return s.vehicleDataHandler("Failed to fetch location", "drive_state")
}

// VehicleChargeHandler proxies only the charge state of one vehicle.
func (s *Server) VehicleChargeHandler() http.HandlerFunc {
	return s.vehicleDataHandler("Failed to fetch charge state", "charge_state")
}

func (s *Server) vehicleDataHandler(errorMessage string, endpoints ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		vehicleID := r.PathValue("id")

		status, body, err := s.fleet.VehicleData(r.Context(), session.AccessToken, vehicleID, endpoints...)
		if err != nil {
			log.Error().Err(err).Str("vehicle_id", vehicleID).Msg("vehicle data: upstream request failed")
			respondJSON(w, http.StatusBadGateway, errorEnvelope{Error: errorMessage})
			return
		}

		log.Info().Int("status", status).Str("vehicle_id", vehicleID).Msg("Fleet API response")

		if !statusOK(status) {
			respondJSON(w, status, errorEnvelope{Error: errorMessage})
			return
		}

		writeUpstreamBody(w, status, body)
	}
}

func statusOK(status int) bool {
	return status >= 200 && status < 300
}

// rawDetails embeds the upstream body in the envelope. Non-JSON bodies
// are carried as a JSON string so the envelope stays well-formed.
func rawDetails(body []byte) json.RawMessage {
	if json.Valid(body) && len(body) > 0 {
		return json.RawMessage(body)
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return json.RawMessage(`""`)
	}
	return json.RawMessage(quoted)
}

func writeUpstreamBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write upstream body")
	}
}
