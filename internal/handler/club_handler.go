package handler

import (
	"context"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/membership"
)

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateClubRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	club, err := h.clubService.CreateClub(r.Context(), userID, req.Name, req.Description, req.IsPrivate)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ClubEnvelope{Club: domainClubToHTTP(club)})
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.GetClub(r.Context(), r.PathValue("clubID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClubEnvelope{Club: domainClubToHTTP(club)})
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.clubService.DeleteClub(r.Context(), r.PathValue("clubID"), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetClubActive(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req SetActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	club, err := h.clubService.SetActive(r.Context(), r.PathValue("clubID"), userID, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClubEnvelope{Club: domainClubToHTTP(club)})
}

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	clubID := r.PathValue("clubID")
	role, err := h.clubService.ResolveRole(r.Context(), clubID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RoleResponse{ClubID: clubID, UserID: userID, Role: string(role)})
}

func (h *Handler) ListMyClubs(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	clubs, err := h.clubService.ListUserClubs(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := ClubListResponse{Clubs: make([]ClubResponse, 0, len(clubs))}
	for _, club := range clubs {
		resp.Clubs = append(resp.Clubs, domainClubToHTTP(club))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) JoinClub(w http.ResponseWriter, r *http.Request) {
	h.selfTransition(w, r, h.clubService.Join)
}

func (h *Handler) LeaveClub(w http.ResponseWriter, r *http.Request) {
	h.selfTransition(w, r, h.clubService.Leave)
}

func (h *Handler) ApproveMember(w http.ResponseWriter, r *http.Request) {
	h.targetTransition(w, r, h.clubService.Approve)
}

func (h *Handler) RejectMember(w http.ResponseWriter, r *http.Request) {
	h.targetTransition(w, r, h.clubService.Reject)
}

func (h *Handler) KickMember(w http.ResponseWriter, r *http.Request) {
	h.targetTransition(w, r, h.clubService.Kick)
}

func (h *Handler) PromoteMember(w http.ResponseWriter, r *http.Request) {
	h.targetTransition(w, r, h.clubService.Promote)
}

func (h *Handler) DemoteMember(w http.ResponseWriter, r *http.Request) {
	h.targetTransition(w, r, h.clubService.Demote)
}

func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req TransferOwnershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.NewOwnerID == "" {
		h.handleError(w, domain.NewBadRequestError("new_owner_id is required"))
		return
	}

	club, err := h.clubService.TransferOwnership(r.Context(), r.PathValue("clubID"), userID, req.NewOwnerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClubEnvelope{Club: domainClubToHTTP(club)})
}

type selfOp func(ctx context.Context, clubID, userID string) (*domain.Club, error)

type targetOp func(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)

func (h *Handler) selfTransition(w http.ResponseWriter, r *http.Request, op selfOp) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	club, err := op(r.Context(), r.PathValue("clubID"), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RoleResponse{
		ClubID: club.ID,
		UserID: userID,
		Role:   string(membership.ResolveRole(club, userID)),
	})
}

func (h *Handler) targetTransition(w http.ResponseWriter, r *http.Request, op targetOp) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	club, err := op(r.Context(), r.PathValue("clubID"), userID, r.PathValue("userID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClubEnvelope{Club: domainClubToHTTP(club)})
}
