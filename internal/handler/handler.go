package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/logger"
	"github.com/bagdasarian/club-membership/internal/service"
)

// UserIDHeader carries the acting user id resolved by the identity provider
// in front of this service.
const UserIDHeader = "X-User-ID"

type Handler struct {
	clubService  service.ClubService
	boardService service.BoardService
	log          *logger.Logger
}

func NewHandler(clubService service.ClubService, boardService service.BoardService, log *logger.Logger) *Handler {
	return &Handler{
		clubService:  clubService,
		boardService: boardService,
		log:          log,
	}
}

func actingUser(r *http.Request) (string, error) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewBadRequestError("invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
