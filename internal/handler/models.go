package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id"`
}

type MemberResponse struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type ClubResponse struct {
	ClubID      string           `json:"club_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	OwnerID     string           `json:"owner_id"`
	IsPrivate   bool             `json:"is_private"`
	IsActive    bool             `json:"is_active"`
	MemberCount int              `json:"member_count"`
	Members     []MemberResponse `json:"members"`
	CreatedAt   string           `json:"created_at"`
}

type ClubEnvelope struct {
	Club ClubResponse `json:"club"`
}

type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

type RoleResponse struct {
	ClubID string `json:"club_id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type BoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BoardResponse struct {
	BoardID     string  `json:"board_id"`
	ClubID      string  `json:"club_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
}

type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostResponse struct {
	PostID    string  `json:"post_id"`
	BoardID   string  `json:"board_id"`
	ClubID    string  `json:"club_id"`
	AuthorID  string  `json:"author_id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}
