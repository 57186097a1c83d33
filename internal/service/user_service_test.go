package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	repomocks "github.com/limbo/serene/internal/repository/mocks"
	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/entity"
	"github.com/pressly/goose"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, repomocks.NewMockActivityRepositoryI(ctrl))
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.RegisterRequest
		MockPrepFunc func()
	}{
		{
			Desc: "registered",
			Req:  service.RegisterRequest{Name: "river_01", Password: "long_password"},
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *entity.User) (uuid.UUID, error) {
					assert.Equal(t, "river_01", *u.Name)
					assert.Equal(t, "river_01", u.DisplayName)
					assert.Equal(t, "en", u.Language)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("long_password")))
					return uid, nil
				})
				usersRepo.EXPECT().FindByName(gomock.Any(), "river_01").Return(&entity.User{ID: uid, Name: strPtr("river_01")}, nil)
			},
		},
		{
			Desc:         "name starts with digit",
			Error:        errorvalues.ErrValidation,
			Req:          service.RegisterRequest{Name: "1river", Password: "long_password"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "short password",
			Error:        errorvalues.ErrValidation,
			Req:          service.RegisterRequest{Name: "river", Password: "short"},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "name taken",
			Error: errorvalues.ErrUserExists,
			Req:   service.RegisterRequest{Name: "river", Password: "long_password"},
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserExists)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Register(context.Background(), &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, user.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, repomocks.NewMockActivityRepositoryI(ctrl))
	hash, err := service.Hash("long_password")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: strPtr("river"), PasswordHash: &hash}

	testCases := []struct {
		Desc         string
		Error        error
		Password     string
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Password: "long_password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "river").Return(user, nil)
			},
		},
		{
			Desc:     "wrong password",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "other_password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "river").Return(user, nil)
			},
		},
		{
			Desc:     "unknown user",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "long_password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "river").Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:     "anonymous user has no password",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "river").Return(&entity.User{ID: user.ID, Anonymous: true}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.Login(context.Background(), "river", tc.Password)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, res.ID)
		})
	}
}

func TestAnonymousSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, repomocks.NewMockActivityRepositoryI(ctrl))
	uid := uuid.New()

	usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *entity.User) (uuid.UUID, error) {
		assert.Nil(t, u.Name)
		assert.Nil(t, u.PasswordHash)
		assert.True(t, u.Anonymous)
		assert.Equal(t, "de", u.Language)
		return uid, nil
	})
	usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Anonymous: true, Language: "de"}, nil)

	user, err := us.AnonymousSignIn(context.Background(), "de")
	require.NoError(t, err)
	assert.True(t, user.Anonymous)
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, repomocks.NewMockActivityRepositoryI(ctrl))
	uid := uuid.New()

	t.Run("only set fields change", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, DisplayName: "River", Language: "en"}, nil)
		usersRepo.EXPECT().UpdateProfile(gomock.Any(), &entity.User{ID: uid, DisplayName: "River", Language: "fr"}).Return(nil)
		user, err := us.UpdateProfile(context.Background(), uid, &service.UpdateProfileRequest{Language: "fr"})
		require.NoError(t, err)
		assert.Equal(t, "fr", user.Language)
	})
	t.Run("invalid email", func(t *testing.T) {
		_, err := us.UpdateProfile(context.Background(), uid, &service.UpdateProfileRequest{Email: strPtr("not-an-email")})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestPushTokenAndReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, repomocks.NewMockActivityRepositoryI(ctrl))
	uid := uuid.New()
	ctx := context.Background()

	usersRepo.EXPECT().SetPushToken(gomock.Any(), uid, "tok").Return(nil)
	assert.NoError(t, us.RegisterPushToken(ctx, uid, "tok"))
	assert.ErrorIs(t, us.RegisterPushToken(ctx, uid, ""), errorvalues.ErrValidation)

	usersRepo.EXPECT().SetReminderEnabled(gomock.Any(), uid, false).Return(nil)
	assert.NoError(t, us.SetReminders(ctx, uid, false))

	usersRepo.EXPECT().ClearPushToken(gomock.Any(), uid).Return(errorvalues.ErrUserNotFound)
	assert.ErrorIs(t, us.Logout(ctx, uid), errorvalues.ErrUserNotFound)

	usersRepo.EXPECT().SetOnboarded(gomock.Any(), uid).Return(errors.New("db error"))
	assert.EqualError(t, us.CompleteOnboarding(ctx, uid), "repository error: db error")
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	activityRepo := repomocks.NewMockActivityRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, activityRepo)
	hash, err := service.Hash("long_password")
	require.NoError(t, err)
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Password     string
		MockPrepFunc func()
	}{
		{
			Desc:     "deleted with password",
			Password: "long_password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, PasswordHash: &hash}, nil)
				usersRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil)
				activityRepo.EXPECT().DeleteAll(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc:     "wrong password",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "nope_nope",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, PasswordHash: &hash}, nil)
			},
		},
		{
			Desc: "anonymous without password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Anonymous: true}, nil)
				usersRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil)
				activityRepo.EXPECT().DeleteAll(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc:  "unknown user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := us.DeleteAccount(context.Background(), uid, tc.Password)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	dbCfg := setupUsersTestDB(t)
	rdb := setupTestRedis(t)
	us := service.NewUserService(repository.NewUsersRepo(dbCfg), repository.NewActivityRepoWithClient(rdb))
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, *user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.Error(t, err)
	})
	t.Run("anonymous user", func(t *testing.T) {
		anon, err := us.AnonymousSignIn(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, anon.Name)
		assert.NoError(t, us.DeleteAccount(ctx, anon.ID, ""))
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.Error(t, err)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.Error(t, err)
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("serene"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("error running redis container: " + err.Error())
	}
	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		rdb.Close()
		container.Terminate(ctx)
	})
	return rdb
}
