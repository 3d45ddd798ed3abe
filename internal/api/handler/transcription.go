package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mymindapp/user-service/internal/api/response"
	"github.com/mymindapp/user-service/internal/domain"
	"github.com/mymindapp/user-service/internal/service"
)

// TranscriptionHandler handles the per-user transcription list.
type TranscriptionHandler struct {
	transcriptionService *service.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(transcriptionService *service.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{transcriptionService: transcriptionService}
}

func (h *TranscriptionHandler) filtered(w http.ResponseWriter, r *http.Request, f domain.TranscriptionFilter) {
	id, ok := subject(w, r)
	if !ok {
		return
	}
	list, err := h.transcriptionService.Filter(r.Context(), id, f)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, list)
}

// List returns every transcription in insertion order.
func (h *TranscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	h.filtered(w, r, domain.TranscriptionFilter{})
}

// Get returns one transcription by id.
func (h *TranscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}
	t, err := h.transcriptionService.GetByID(r.Context(), id, chi.URLParam(r, "transcriptionID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, t)
}

// ByEmotion returns transcriptions with the given emotion label.
func (h *TranscriptionHandler) ByEmotion(w http.ResponseWriter, r *http.Request) {
	h.filtered(w, r, domain.TranscriptionFilter{Emotion: chi.URLParam(r, "emotion")})
}

// BySentiment returns transcriptions with the given sentiment label.
func (h *TranscriptionHandler) BySentiment(w http.ResponseWriter, r *http.Request) {
	h.filtered(w, r, domain.TranscriptionFilter{Sentiment: chi.URLParam(r, "sentiment")})
}

// ByTopic returns transcriptions with the given topic.
func (h *TranscriptionHandler) ByTopic(w http.ResponseWriter, r *http.Request) {
	h.filtered(w, r, domain.TranscriptionFilter{Topic: chi.URLParam(r, "topic")})
}

// ByDate returns transcriptions whose date starts with the given prefix, so
// "2024" and "2024-05" work at year and month granularity.
func (h *TranscriptionHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	h.filtered(w, r, domain.TranscriptionFilter{Date: chi.URLParam(r, "date")})
}

// hourParam parses an hour query parameter, enforcing the 0-23 range.
// Returns (nil, true) when the parameter is absent.
func hourParam(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	h, err := strconv.Atoi(raw)
	if err != nil || h < 0 || h > 23 {
		response.BadRequest(w, name+" must be an integer between 0 and 23")
		return nil, false
	}
	return &h, true
}

// ByHour returns transcriptions within an inclusive hour range. A start
// without an end is a single-hour lookup.
func (h *TranscriptionHandler) ByHour(w http.ResponseWriter, r *http.Request) {
	start, ok := hourParam(w, r, "start_hour")
	if !ok {
		return
	}
	end, ok := hourParam(w, r, "end_hour")
	if !ok {
		return
	}
	if start == nil && end == nil {
		response.BadRequest(w, "start_hour is required")
		return
	}
	h.filtered(w, r, domain.TranscriptionFilter{StartHour: start, EndHour: end})
}

// Filter combines every optional predicate: emotion, sentiment, topic, date
// prefix and hour range.
func (h *TranscriptionHandler) Filter(w http.ResponseWriter, r *http.Request) {
	start, ok := hourParam(w, r, "start_hour")
	if !ok {
		return
	}
	end, ok := hourParam(w, r, "end_hour")
	if !ok {
		return
	}

	q := r.URL.Query()
	h.filtered(w, r, domain.TranscriptionFilter{
		Emotion:   q.Get("emotion"),
		Sentiment: q.Get("sentiment"),
		Topic:     q.Get("topic"),
		Date:      q.Get("date"),
		StartHour: start,
		EndHour:   end,
	})
}

// Add appends a new transcription to the authenticated user's list.
func (h *TranscriptionHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	var input domain.TranscriptionCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	t, err := h.transcriptionService.Add(r.Context(), id, input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, map[string]any{
		"message":          "transcription added",
		"transcription_id": t.ID,
	})
}

// Delete removes one transcription by id.
func (h *TranscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.transcriptionService.Delete(r.Context(), id, chi.URLParam(r, "transcriptionID")); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "transcription deleted"})
}

// DeleteAll clears the whole list. Calling it on an empty list succeeds.
func (h *TranscriptionHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.transcriptionService.DeleteAll(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "all transcriptions deleted"})
}
