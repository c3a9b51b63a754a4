package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/avolkovs/techcards/internal/server/services"
)

// parseListQuery extracts the filter and pagination parameters from the
// query string. Unparseable numbers fall through as zero and are normalized
// by the service; an unknown tech value means "no tech filter".
func parseListQuery(r *http.Request) (models.ListFilter, int, int) {
	q := r.URL.Query()

	filter := models.ListFilter{
		Tech:     models.TechFilterFrom(q.Get("tech")),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return filter, page, limit
}

func (s *HTTPServer) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	filter, page, limit := parseListQuery(r)

	result, err := s.flashcards.List(r.Context(), filter, page, limit)
	if err != nil {
		s.logger.Error(r.Context(), "list flashcards failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleGetFlashcard(w http.ResponseWriter, r *http.Request) {
	card, err := s.flashcards.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *HTTPServer) handleCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var in services.CreateFlashcardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewValidation("Invalid request body"))
		return
	}

	card, err := s.flashcards.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (s *HTTPServer) handleUpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	var in services.UpdateFlashcardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewValidation("Invalid request body"))
		return
	}

	card, err := s.flashcards.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *HTTPServer) handleDeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := s.flashcards.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Flashcard deleted successfully",
	})
}

func (s *HTTPServer) handleCategories(w http.ResponseWriter, r *http.Request) {
	tags, err := s.flashcards.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": tags})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewValidation("Invalid request body"))
		return
	}

	token, err := s.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TokenValidityDuration.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
	})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: "Authentication required", Code: "AUTH_ERROR"})
		return
	}

	user, err := s.users.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		s.logger.Error(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "error",
			"database": "down",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}
