package handler

import "net/http"

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req BoardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), r.PathValue("clubID"), userID, req.Name, req.Description)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainBoardToHTTP(board))
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	boards, err := h.boardService.ListBoards(r.Context(), r.PathValue("clubID"), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := BoardListResponse{Boards: make([]BoardResponse, 0, len(boards))}
	for _, board := range boards {
		resp.Boards = append(resp.Boards, domainBoardToHTTP(board))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req BoardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	board, err := h.boardService.UpdateBoard(r.Context(), r.PathValue("clubID"), r.PathValue("boardID"), userID, req.Name, req.Description)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainBoardToHTTP(board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.boardService.DeleteBoard(r.Context(), r.PathValue("clubID"), r.PathValue("boardID"), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req PostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	post, err := h.boardService.CreatePost(r.Context(), r.PathValue("clubID"), r.PathValue("boardID"), userID, req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainPostToHTTP(post))
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	posts, err := h.boardService.ListPosts(r.Context(), r.PathValue("clubID"), r.PathValue("boardID"), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := PostListResponse{Posts: make([]PostResponse, 0, len(posts))}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, domainPostToHTTP(post))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req PostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	post, err := h.boardService.UpdatePost(r.Context(), r.PathValue("clubID"), r.PathValue("postID"), userID, req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPostToHTTP(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUser(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.boardService.DeletePost(r.Context(), r.PathValue("clubID"), r.PathValue("postID"), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
