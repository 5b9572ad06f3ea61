package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/models"
)

type SubscriberHandler struct {
	service *app.Service
}

func NewSubscriberHandler(service *app.Service) *SubscriberHandler {
	return &SubscriberHandler{
		service: service,
	}
}

// HandleSubmit validates the form and appends it to the subscriber
// file. Validation failures never reach the store.
func (h *SubscriberHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(duration)
	}()

	var subscriber models.Subscriber
	if err := json.NewDecoder(r.Body).Decode(&subscriber); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := subscriber.Validate(); err != nil {
		logger.Debug.Printf("Rejected subscriber form: %v", err)
		metrics.SubscriberSubmissionsTotal.WithLabelValues("rejected").Inc()
		writeValidationError(w, err)
		return
	}

	if err := h.service.Subscribers.Append(subscriber); err != nil {
		logger.Error.Printf("Failed to save subscriber: %v", err)
		metrics.SubscriberSubmissionsTotal.WithLabelValues("error").Inc()
		writeDetail(w, http.StatusInternalServerError, "Ошибка при сохранении данных")
		return
	}

	metrics.SubscriberSubmissionsTotal.WithLabelValues("saved").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Данные успешно сохранены",
		"subscriber": subscriber,
	})
}
