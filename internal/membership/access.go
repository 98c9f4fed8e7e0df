package membership

import "github.com/bagdasarian/club-membership/internal/domain"

// CanReadBoards reports whether role may list boards and read posts.
func CanReadBoards(role domain.Role) bool {
	return role.AtLeastMember()
}

// CanManageBoards reports whether role may create, edit or delete boards.
func CanManageBoards(role domain.Role) bool {
	return role.CanModerate()
}

func CanPost(role domain.Role) bool {
	return role.AtLeastMember()
}

// CanModifyPost allows the post author while they still belong to the club,
// and the club's owner and admins.
func CanModifyPost(club *domain.Club, userID string, post *domain.Post) bool {
	if club == nil || post == nil || post.ClubID != club.ID {
		return false
	}
	role := ResolveRole(club, userID)
	if role.CanModerate() {
		return true
	}
	return post.AuthorID == userID && role.AtLeastMember()
}
