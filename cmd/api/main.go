package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/serene/internal/api"
	"github.com/limbo/serene/internal/companion"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/scheduler"
	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/cleanup"
	"github.com/limbo/serene/pkg/config"
	jwtservice "github.com/limbo/serene/pkg/jwt_service"
	"github.com/limbo/serene/pkg/push"
)

const reminderJob = "daily-reminder"

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	defaultLoc := cfg.GetLocation("DEFAULT_TIMEZONE")

	usersRepo := repository.NewUsersRepo(&dbCfg)
	moodsRepo := repository.NewMoodLogsRepo(&dbCfg)
	activityRepo := repository.NewActivityRepo(cfg.GetStringOr("REDIS_URL", "redis://localhost:6379/0"))

	notificationService := service.NewNotificationService(usersRepo, moodsRepo, newPushSender(ctx, cfg.GetString("FIREBASE_CREDENTIALS_FILE")), nil)
	moodService := service.NewMoodService(moodsRepo, usersRepo, activityRepo, notificationService, defaultLoc)
	generator := companion.New(companion.Config{
		APIKey:  cfg.GetString("OPENAI_API_KEY"),
		Model:   cfg.GetString("OPENAI_MODEL"),
		BaseURL: cfg.GetString("OPENAI_BASE_URL"),
	}, nil)

	jobs := scheduler.New(nil)
	at, err := scheduler.ParseDaily(cfg.GetStringOr("REMINDER_TIME", "14:00"), defaultLoc)
	if err != nil {
		log.Fatal(err)
	}
	jobs.Register(scheduler.Job{
		Name:        reminderJob,
		Description: "Sends the daily mood check-in push to users with reminders on",
		At:          &at,
		Fn: func(ctx context.Context) error {
			_, err := notificationService.SendDailyReminders(ctx)
			return err
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo, activityRepo),
		MoodService:      moodService,
		ChatService:      service.NewChatService(repository.NewChatRepo(&dbCfg), generator),
		CommunityService: service.NewCommunityService(repository.NewCommunityRepo(&dbCfg)),
		ActivityService:  service.NewActivityService(activityRepo),
		ExportService:    service.NewExportService(moodsRepo, usersRepo, activityRepo, defaultLoc),
		Jobs:             jobs,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")).WithTTL(cfg.GetDuration("JWT_TTL", time.Hour)),
		AdminKey:         cfg.GetString("ADMIN_KEY"),
	})

	jobs.Start(ctx)
	if err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	stop()
	// Pending hooks and jobs still use the pools
	moodService.WaitHooks()
	jobs.Wait()
}

// newPushSender falls back to logging pushes when no Firebase credentials are set
func newPushSender(ctx context.Context, credentialsFile string) push.Sender {
	if credentialsFile == "" {
		slog.Warn("FIREBASE_CREDENTIALS_FILE is not set, pushes are only logged")
		return push.NewLogSender(nil)
	}
	sender, err := push.NewFCMSender(ctx, credentialsFile, nil)
	if err != nil {
		log.Fatal(err)
	}
	return sender
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
