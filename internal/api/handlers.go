package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/agrisense/crop-advisory/internal/advisory"
	"github.com/agrisense/crop-advisory/internal/chat"
	"github.com/agrisense/crop-advisory/internal/store"
	"github.com/agrisense/crop-advisory/pkg/logger"
)

// maxImageSize caps pest detection uploads at 10 MiB.
const maxImageSize = 10 << 20

type APIHandler struct {
	engine   *advisory.Engine
	sessions *chat.SessionStore
	feedback *store.FeedbackStore
}

func NewAPIHandler(engine *advisory.Engine, sessions *chat.SessionStore, feedback *store.FeedbackStore) *APIHandler {
	return &APIHandler{
		engine:   engine,
		sessions: sessions,
		feedback: feedback,
	}
}

type SoilAdviceRequest struct {
	PH   float64 `json:"ph"`
	Crop string  `json:"crop"`
}

type SoilAdviceResponse struct {
	Recommendations []string `json:"recommendations"`
}

func (h *APIHandler) SoilAdviceHandler(w http.ResponseWriter, r *http.Request) {
	var req SoilAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := SoilAdviceResponse{Recommendations: advisory.SoilAdvice(req.PH, req.Crop)}
	json.NewEncoder(w).Encode(resp)
}

type WeatherAlertRequest struct {
	Location string `json:"location"`
}

func (h *APIHandler) WeatherAlertHandler(w http.ResponseWriter, r *http.Request) {
	var req WeatherAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	alert := h.engine.WeatherAlert(req.Location)
	json.NewEncoder(w).Encode(alert)
}

func (h *APIHandler) PestDetectHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		http.Error(w, "Invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "An image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read image", http.StatusBadRequest)
		return
	}

	finding := h.engine.DetectPest(imageBytes)
	json.NewEncoder(w).Encode(finding)
}

func (h *APIHandler) MarketPricesHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.engine.MarketPrices())
}

func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sess)
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, ok := h.sessions.Get(sessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(sess)
}

func (h *APIHandler) ResetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, ok := h.sessions.Reset(sessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(sess)
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "Message content cannot be empty", http.StatusBadRequest)
		return
	}

	assistantMsg, ok := h.sessions.PostMessage(sessionID, req.Content)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(assistantMsg)
}

type FeedbackRequest struct {
	Name     string `json:"name"`
	Comments string `json:"comments"`
}

func (h *APIHandler) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry := store.FeedbackEntry{
		Time:     time.Now().Format(time.RFC3339),
		Name:     req.Name,
		Comments: req.Comments,
	}
	if err := h.feedback.Append(entry); err != nil {
		// Non-fatal: report to the user, keep the session intact.
		logger.Error("failed to save feedback", zap.Error(err))
		http.Error(w, "Failed to save feedback, please try again", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
}
