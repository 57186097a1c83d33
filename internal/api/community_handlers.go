package api

import (
	"context"
	"net/http"

	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/httputil"
)

type CreatePostRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type GetPostsResponse struct {
	Category string                 `json:"category,omitempty"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Posts    []entity.CommunityPost `json:"posts"`
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create post")
	if !ok {
		return
	}
	var req CreatePostRequest
	if !decodeBody(w, r, logger, "create post", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.communityService.CreatePost(ctx, uid, &service.CreatePostRequest{
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		writeServiceError(w, logger, "create post", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, view)
	logger.Info("post created")
}

func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	opts, page, limit := pagination(r, 20, 100)
	category := r.URL.Query().Get("category")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	posts, err := s.communityService.ListPosts(ctx, category, opts)
	if err != nil {
		writeServiceError(w, logger, "get posts", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetPostsResponse{
		Category: category,
		Page:     page,
		Limit:    limit,
		Posts:    posts,
	})
}

func (s *Server) DeletePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "post deletion")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "post deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.communityService.DeletePost(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "post deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("post deleted")
}

func (s *Server) LikePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "like post")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	likes, err := s.communityService.LikePost(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "like post", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"likes": likes})
}

func (s *Server) AddReply(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "reply")
	if !ok {
		return
	}
	postID, ok := pathUUID(w, r, logger, "reply")
	if !ok {
		return
	}
	var req TextRequest
	if !decodeBody(w, r, logger, "reply", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.communityService.AddReply(ctx, postID, uid, &service.ReplyRequest{Text: req.Text})
	if err != nil {
		writeServiceError(w, logger, "reply", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, view)
}

func (s *Server) ListReplies(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	postID, ok := pathUUID(w, r, logger, "get replies")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	replies, err := s.communityService.ListReplies(ctx, postID)
	if err != nil {
		writeServiceError(w, logger, "get replies", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"replies": replies})
}
