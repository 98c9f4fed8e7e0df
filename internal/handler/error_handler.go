package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.log.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeInsufficientRole, domain.CodeAdminCannotKickAdmin:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyOwner,
		domain.CodeAlreadyMemberOrPending,
		domain.CodeNotAMember,
		domain.CodeNoPendingRequest,
		domain.CodeTargetNotMember,
		domain.CodeTargetNotEligible,
		domain.CodeTargetNotAMember,
		domain.CodeOwnerCannotLeave,
		domain.CodeCannotKickOwner,
		domain.CodeClubInactive,
		domain.CodeVersionConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
