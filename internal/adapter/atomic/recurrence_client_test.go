package atomic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"taskhub/internal/adapter/atomic"
	"taskhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurrenceClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /recurrence/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "r-1" {
			writeJSON(w, http.StatusNotFound, ``)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"r-1","task_id":"t-1","frequency":"weekly","interval":2,"end_date":"2026-12-31"}`)
	})
	mux.HandleFunc("GET /recurrence/task/{taskId}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"r-1","task_id":"`+r.PathValue("taskId")+`","frequency":"daily","interval":1}]`)
	})
	mux.HandleFunc("POST /recurrence", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "t-1", body["task_id"])
		_, hasCamel := body["taskId"]
		assert.False(t, hasCamel)
		writeJSON(w, http.StatusCreated, `"Recurrence created successfully"`)
	})
	mux.HandleFunc("PUT /recurrence/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /recurrence/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ``)
	})
	client := atomic.NewRecurrenceClient(newServer(t, mux).URL, nil, nil)
	ctx := context.Background()

	recurrence, err := client.GetRecurrence(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "t-1", recurrence.TaskID)
	assert.Equal(t, 2, recurrence.Interval)
	assert.Equal(t, "2026-12-31", *recurrence.EndDate)

	_, err = client.GetRecurrence(ctx, "r-2")
	assert.ErrorIs(t, err, domain.ErrRecurrenceNotFound)

	recurrences, err := client.ListRecurrencesByTask(ctx, "t-7")
	require.NoError(t, err)
	require.Len(t, recurrences, 1)
	assert.Equal(t, "t-7", recurrences[0].TaskID)

	require.NoError(t, client.CreateRecurrence(ctx, domain.Recurrence{TaskID: "t-1", Frequency: "daily", Interval: 1}))
	require.NoError(t, client.UpdateRecurrence(ctx, "r-1", domain.Recurrence{ID: "r-1", TaskID: "t-1", Frequency: "daily", Interval: 1}))
	assert.ErrorIs(t, client.DeleteRecurrence(ctx, "r-1"), domain.ErrRecurrenceNotFound)
}
