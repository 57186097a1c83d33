package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/serene/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	moodService      service.MoodServiceI
	chatService      service.ChatServiceI
	communityService service.CommunityServiceI
	activityService  service.ActivityServiceI
	exportService    service.ExportServiceI
	jobs             service.JobsServiceI
	jwtService       JWTServiceI
	adminKey         string
}

type ServicesList struct {
	UserService      service.UserServiceI
	MoodService      service.MoodServiceI
	ChatService      service.ChatServiceI
	CommunityService service.CommunityServiceI
	ActivityService  service.ActivityServiceI
	ExportService    service.ExportServiceI
	Jobs             service.JobsServiceI
	JwtService       JWTServiceI
	// Admin routes are mounted only when both Jobs and AdminKey are set
	AdminKey string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		moodService:      servicesOptions.MoodService,
		chatService:      servicesOptions.ChatService,
		communityService: servicesOptions.CommunityService,
		activityService:  servicesOptions.ActivityService,
		exportService:    servicesOptions.ExportService,
		jobs:             servicesOptions.Jobs,
		jwtService:       servicesOptions.JwtService,
		adminKey:         servicesOptions.AdminKey,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Get("/moods/taxonomy", s.MoodTaxonomy)
		r.Get("/resources/helplines", s.Helplines)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/anonymous", s.AnonymousSignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", s.GetProfile)
				r.Patch("/", s.UpdateProfile)
				r.Delete("/", s.DeleteAccount)
				r.Post("/onboarding", s.CompleteOnboarding)
				r.Post("/push-token", s.RegisterPushToken)
				r.Delete("/push-token", s.Logout)
				r.Put("/reminders", s.SetReminders)
				r.Post("/logout", s.Logout)
			})
			r.Route("/moods", func(r chi.Router) {
				r.Post("/", s.RecordMood)
				r.Get("/", s.ListMoods)
				r.Get("/trend", s.GetTrend)
				r.Get("/stats", s.GetStats)
				r.Get("/badges", s.GetBadges)
				r.Delete("/{id}", s.DeleteMood)
			})
			r.Route("/chat", func(r chi.Router) {
				r.Post("/", s.SendChatMessage)
				r.Get("/history", s.ChatHistory)
				r.Delete("/history", s.ClearChatHistory)
			})
			r.Route("/activities", func(r chi.Router) {
				r.Get("/", s.GetActivityFlags)
				r.Post("/breathing", s.MarkBreathingUsed)
				r.Post("/journal", s.SaveJournalEntry)
				r.Get("/journal", s.ListJournal)
				r.Post("/affirmations", s.SaveAffirmation)
				r.Get("/affirmations", s.ListAffirmations)
			})
			r.Route("/export", func(r chi.Router) {
				r.Get("/csv", s.ExportCSV)
				r.Get("/report", s.ExportReport)
			})
			r.Route("/community/posts", func(r chi.Router) {
				r.Get("/", s.ListPosts)
				r.Post("/", s.CreatePost)
				r.Delete("/{id}", s.DeletePost)
				r.Post("/{id}/like", s.LikePost)
				r.Get("/{id}/replies", s.ListReplies)
				r.Post("/{id}/replies", s.AddReply)
			})
		})

		if s.jobs != nil && s.adminKey != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminKeyMiddleware)
				r.Get("/jobs", s.ListJobs)
				r.Post("/jobs/{name}/run", s.RunJob)
			})
		}
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("api server stopped")
	return nil
}
