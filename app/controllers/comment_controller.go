package controllers

import (
	"net/http"

	"quickblog/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentsRequest struct {
	BlogID string `json:"blogId"`
}

// Create handles POST /api/blog/add-comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CommentInput
	if err := decodeJSON(r, &in); err != nil {
		sendError(w, r, err)
		return
	}
	if _, err := cc.commentService.AddComment(r.Context(), in); err != nil {
		sendError(w, r, err)
		return
	}
	sendMessage(w, http.StatusCreated, "Comment added successfully")
}

// Index handles POST /api/blog/comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	var req commentsRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err)
		return
	}
	comments, err := cc.commentService.ListApproved(r.Context(), req.BlogID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}
