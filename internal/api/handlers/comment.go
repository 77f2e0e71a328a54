package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type CreateCommentRequest struct {
	Message  string  `json:"message"`
	ClientID *string `json:"client"`
}

type CommentResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [comment.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	respondJSON(w, http.StatusOK, CommentResponse{Data: comments, Message: "Comments retrieved successfully"})
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	input := service.CreateCommentInput{Message: req.Message}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}
		input.ClientID = &clientID
	}

	comment, err := h.commentService.Create(r.Context(), input)
	if err != nil {
		log.Printf("ERROR [comment.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	respondJSON(w, http.StatusCreated, CommentResponse{Data: comment, Message: "Comment created successfully"})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			respondError(w, http.StatusNotFound, "Comment not found")
			return
		}
		log.Printf("ERROR [comment.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
