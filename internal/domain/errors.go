package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so that errors.Is works with wrapped and re-created errors.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeInsufficientRole       = "INSUFFICIENT_ROLE"
	CodeAdminCannotKickAdmin   = "ADMIN_CANNOT_KICK_ADMIN"
	CodeAlreadyOwner           = "ALREADY_OWNER"
	CodeAlreadyMemberOrPending = "ALREADY_MEMBER_OR_PENDING"
	CodeNotAMember             = "NOT_A_MEMBER"
	CodeNoPendingRequest       = "NO_PENDING_REQUEST"
	CodeTargetNotMember        = "TARGET_NOT_MEMBER"
	CodeTargetNotEligible      = "TARGET_NOT_ELIGIBLE"
	CodeTargetNotAMember       = "TARGET_NOT_A_MEMBER"
	CodeOwnerCannotLeave       = "OWNER_CANNOT_LEAVE"
	CodeCannotKickOwner        = "CANNOT_KICK_OWNER"
	CodeClubInactive           = "CLUB_INACTIVE"
	CodeNotFound               = "NOT_FOUND"
	CodeVersionConflict        = "VERSION_CONFLICT"
	CodeBadRequest             = "BAD_REQUEST"
	CodeUnauthenticated        = "UNAUTHENTICATED"
)

// Authorization errors.
var (
	ErrInsufficientRole = &DomainError{
		Code:    CodeInsufficientRole,
		Message: "actor role is not allowed to perform this action",
	}

	ErrAdminCannotKickAdmin = &DomainError{
		Code:    CodeAdminCannotKickAdmin,
		Message: "only the owner can remove an admin",
	}
)

// State-precondition errors.
var (
	ErrAlreadyOwner = &DomainError{
		Code:    CodeAlreadyOwner,
		Message: "user already owns this club",
	}

	ErrAlreadyMemberOrPending = &DomainError{
		Code:    CodeAlreadyMemberOrPending,
		Message: "user is already a member or has a pending request",
	}

	ErrNotAMember = &DomainError{
		Code:    CodeNotAMember,
		Message: "user is not a member of this club",
	}

	ErrNoPendingRequest = &DomainError{
		Code:    CodeNoPendingRequest,
		Message: "target has no pending join request",
	}

	ErrTargetNotMember = &DomainError{
		Code:    CodeTargetNotMember,
		Message: "target is not a member of this club",
	}

	ErrTargetNotEligible = &DomainError{
		Code:    CodeTargetNotEligible,
		Message: "target role does not allow this transition",
	}

	ErrTargetNotAMember = &DomainError{
		Code:    CodeTargetNotAMember,
		Message: "new owner must already belong to the club",
	}

	ErrOwnerCannotLeave = &DomainError{
		Code:    CodeOwnerCannotLeave,
		Message: "owner cannot leave the club, transfer ownership first",
	}

	ErrCannotKickOwner = &DomainError{
		Code:    CodeCannotKickOwner,
		Message: "owner cannot be kicked",
	}
)

// Structural and infrastructure errors.
var (
	ErrClubInactive = &DomainError{
		Code:    CodeClubInactive,
		Message: "club is inactive",
	}

	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrVersionConflict is returned by storage when the club changed
	// between load and save.
	ErrVersionConflict = &DomainError{
		Code:    CodeVersionConflict,
		Message: "club was modified concurrently",
	}

	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "acting user is not identified",
	}
)

// NewNotFoundError creates a NOT_FOUND error with the resource name.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
