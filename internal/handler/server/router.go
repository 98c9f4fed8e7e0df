package server

import (
	"net/http"

	"github.com/bagdasarian/club-membership/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /clubs", h.CreateClub)
	mux.HandleFunc("GET /clubs/{clubID}", h.GetClub)
	mux.HandleFunc("DELETE /clubs/{clubID}", h.DeleteClub)
	mux.HandleFunc("POST /clubs/{clubID}/active", h.SetClubActive)
	mux.HandleFunc("GET /clubs/{clubID}/role", h.GetRole)
	mux.HandleFunc("GET /users/me/clubs", h.ListMyClubs)

	mux.HandleFunc("POST /clubs/{clubID}/join", h.JoinClub)
	mux.HandleFunc("POST /clubs/{clubID}/leave", h.LeaveClub)
	mux.HandleFunc("POST /clubs/{clubID}/members/{userID}/approve", h.ApproveMember)
	mux.HandleFunc("POST /clubs/{clubID}/members/{userID}/reject", h.RejectMember)
	mux.HandleFunc("POST /clubs/{clubID}/members/{userID}/kick", h.KickMember)
	mux.HandleFunc("POST /clubs/{clubID}/members/{userID}/promote", h.PromoteMember)
	mux.HandleFunc("POST /clubs/{clubID}/members/{userID}/demote", h.DemoteMember)
	mux.HandleFunc("POST /clubs/{clubID}/transfer", h.TransferOwnership)

	mux.HandleFunc("GET /clubs/{clubID}/boards", h.ListBoards)
	mux.HandleFunc("POST /clubs/{clubID}/boards", h.CreateBoard)
	mux.HandleFunc("PUT /clubs/{clubID}/boards/{boardID}", h.UpdateBoard)
	mux.HandleFunc("DELETE /clubs/{clubID}/boards/{boardID}", h.DeleteBoard)
	mux.HandleFunc("GET /clubs/{clubID}/boards/{boardID}/posts", h.ListPosts)
	mux.HandleFunc("POST /clubs/{clubID}/boards/{boardID}/posts", h.CreatePost)
	mux.HandleFunc("PUT /clubs/{clubID}/posts/{postID}", h.UpdatePost)
	mux.HandleFunc("DELETE /clubs/{clubID}/posts/{postID}", h.DeletePost)
}
