package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSubmitBody = `{
	"last_name": "Иванов",
	"first_name": "Мария",
	"b_date": "1990-05-17",
	"phone_number": "+79161234567",
	"email": "maria@example.com"
}`

func TestHandleSubmit(t *testing.T) {
	service := newTestService(t)
	mux := NewRouter(service)

	t.Run("valid form is saved", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodPost, "/submit", validSubmitBody)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp struct {
			Message    string          `json:"message"`
			Subscriber json.RawMessage `json:"subscriber"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Данные успешно сохранены", resp.Message)
		assert.Contains(t, string(resp.Subscriber), "Иванов")

		subscribers, err := service.Subscribers.List()
		require.NoError(t, err)
		require.Len(t, subscribers, 1)
		assert.Equal(t, "Иванов", subscribers[0].LastName)
	})

	t.Run("latin name fails with 422 and nothing is written", func(t *testing.T) {
		service := newTestService(t)
		mux := NewRouter(service)

		body := `{
			"last_name": "Ivanov",
			"first_name": "Мария",
			"b_date": "1990-05-17",
			"phone_number": "+79161234567",
			"email": "maria@example.com"
		}`
		rec := doRequest(t, mux, http.MethodPost, "/submit", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "last_name")

		subscribers, err := service.Subscribers.List()
		require.NoError(t, err)
		assert.Empty(t, subscribers, "validation failure must not reach the store")
	})

	t.Run("bad email fails with 422", func(t *testing.T) {
		body := `{
			"last_name": "Иванов",
			"first_name": "Мария",
			"b_date": "1990-05-17",
			"phone_number": "+79161234567",
			"email": "nope"
		}`
		rec := doRequest(t, mux, http.MethodPost, "/submit", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})

	t.Run("garbage body is a 400", func(t *testing.T) {
		rec := doRequest(t, mux, http.MethodPost, "/submit", "{nope")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
