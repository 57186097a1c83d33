package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/httputil"
)

type TextRequest struct {
	Text string `json:"text"`
}

func (s *Server) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "chat")
	if !ok {
		return
	}
	var req TextRequest
	if !decodeBody(w, r, logger, "chat", &req) {
		return
	}
	// Model calls may take longer than storage
	ctx, cancel := context.WithTimeout(r.Context(), 3*requestTimeout)
	defer cancel()
	reply, err := s.chatService.SendMessage(ctx, uid, &service.ChatRequest{Text: req.Text})
	if err != nil {
		writeServiceError(w, logger, "chat", err)
		return
	}
	if reply.ShowResources {
		logger.Warn("crisis resources shown")
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reply)
}

func (s *Server) ChatHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "chat history")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	messages, err := s.chatService.History(ctx, uid, limit)
	if err != nil {
		writeServiceError(w, logger, "chat history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) ClearChatHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "chat clearing")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.chatService.ClearHistory(ctx, uid); err != nil {
		writeServiceError(w, logger, "chat clearing", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
