package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/domain"
)

// Handler exposes quiz generation and progress aggregation over JSON HTTP.
type Handler struct {
	service *app.QuizService
}

func NewHandler(service *app.QuizService) *Handler {
	return &Handler{service: service}
}

// Register wires the handler's routes into the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/generate-quiz", h.GenerateQuiz)
	mux.HandleFunc("/progress-stats", h.ProgressStats)
}

type generateRequest struct {
	Topic string `json:"topic"`
}

type generateResponse struct {
	Questions []domain.Question `json:"questions"`
	Source    domain.Source     `json:"source"`
	Error     string            `json:"error,omitempty"`
}

type progressRequest struct {
	Results []domain.QuizResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GenerateQuiz handles POST /generate-quiz. A blank topic is the only client
// error surfaced as such; a model-path failure still answers 200 with
// backup-sourced questions and the cause in the error field.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("malformed generate-quiz body: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate quiz"})
		return
	}

	generated, err := h.service.Generate(r.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, domain.ErrTopicRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Topic is required"})
			return
		}
		log.Printf("quiz generation error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate quiz"})
		return
	}

	resp := generateResponse{
		Questions: generated.Questions,
		Source:    generated.Source,
	}
	if generated.FallbackCause != nil {
		resp.Error = generated.FallbackCause.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// ProgressStats handles POST /progress-stats: the client posts its stored
// attempt history (the server keeps none) and gets the aggregated view back.
func (h *Handler) ProgressStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid results payload"})
		return
	}

	writeJSON(w, http.StatusOK, app.ComputeProgressStats(req.Results))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
