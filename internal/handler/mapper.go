package handler

import (
	"sort"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// domainClubToHTTP renders the roster sorted by join time, then user id.
func domainClubToHTTP(club *domain.Club) ClubResponse {
	members := make([]MemberResponse, 0, len(club.Members))
	records := make([]domain.MemberRecord, 0, len(club.Members))
	for _, rec := range club.Members {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].JoinedAt.Equal(records[j].JoinedAt) {
			return records[i].UserID < records[j].UserID
		}
		return records[i].JoinedAt.Before(records[j].JoinedAt)
	})
	for _, rec := range records {
		members = append(members, MemberResponse{
			UserID:   rec.UserID,
			Role:     string(rec.Role),
			JoinedAt: formatTime(rec.JoinedAt),
		})
	}

	return ClubResponse{
		ClubID:      club.ID,
		Name:        club.Name,
		Description: club.Description,
		OwnerID:     club.OwnerID,
		IsPrivate:   club.IsPrivate,
		IsActive:    club.IsActive,
		MemberCount: club.MemberCount(),
		Members:     members,
		CreatedAt:   formatTime(club.CreatedAt),
	}
}

func domainBoardToHTTP(board *domain.Board) BoardResponse {
	return BoardResponse{
		BoardID:     board.ID,
		ClubID:      board.ClubID,
		Name:        board.Name,
		Description: board.Description,
		CreatedBy:   board.CreatedBy,
		CreatedAt:   formatTime(board.CreatedAt),
		UpdatedAt:   formatTimePtr(board.UpdatedAt),
	}
}

func domainPostToHTTP(post *domain.Post) PostResponse {
	return PostResponse{
		PostID:    post.ID,
		BoardID:   post.BoardID,
		ClubID:    post.ClubID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: formatTime(post.CreatedAt),
		UpdatedAt: formatTimePtr(post.UpdatedAt),
	}
}
