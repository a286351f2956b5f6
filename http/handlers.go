package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentrisk/monitoring"
	"studentrisk/predict"
)

const serviceVersion = "1.0.0"

func RegisterHandlers(mux *http.ServeMux, service *predict.Service, hub *monitoring.Hub) {
	mux.HandleFunc("GET /{$}", handleRoot)
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /predict", handlePredict(service))
	mux.Handle("GET /metrics", promhttp.Handler())
	if hub != nil {
		mux.HandleFunc("GET /api/ws/events", hub.HandleWebSocket)
	}
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Student Academic Risk Prediction API",
		"version": serviceVersion,
		"endpoints": map[string]string{
			"predict": "/predict (POST)",
			"health":  "/health",
			"metrics": "/metrics",
			"events":  "/api/ws/events",
		},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}

func handlePredict(service *predict.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record predict.StudentRecord
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&record); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		result, err := service.Predict(r.Context(), record)
		if err != nil {
			var validationErr *predict.ValidationError
			if errors.As(err, &validationErr) {
				respondJSON(w, http.StatusBadRequest, map[string]interface{}{
					"error":  validationErr.Error(),
					"fields": validationErr.Fields,
				})
				return
			}
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "prediction failed: " + err.Error()})
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
