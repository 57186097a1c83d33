package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultLanguage      = "en"
	anonymousDisplayName = "Friend"
)

type UserService struct {
	repo         repository.UsersRepositoryI
	activityRepo repository.ActivityRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, activityRepo repository.ActivityRepositoryI) *UserService {
	if usersRepo == nil || activityRepo == nil {
		log.Fatal("on user service provided nil repos")
	}
	return &UserService{
		repo:         usersRepo,
		activityRepo: activityRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Name
	}
	language := req.Language
	if language == "" {
		language = defaultLanguage
	}
	_, err = us.repo.Create(ctx, &entity.User{
		Name:         &req.Name,
		PasswordHash: &passwordHash,
		DisplayName:  displayName,
		Language:     language,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if user.PasswordHash == nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) AnonymousSignIn(ctx context.Context, language string) (*entity.User, error) {
	if language == "" {
		language = defaultLanguage
	}
	id, err := us.repo.Create(ctx, &entity.User{
		DisplayName: anonymousDisplayName,
		Language:    language,
		Anonymous:   true,
	})
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return us.GetByID(ctx, id)
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// UpdateProfile changes only the fields set in req
func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Language != "" {
		user.Language = req.Language
	}
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) CompleteOnboarding(ctx context.Context, id uuid.UUID) error {
	return wrapUserErr(us.repo.SetOnboarded(ctx, id))
}

func (us *UserService) RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error {
	if token == "" {
		return errors.Join(errorvalues.ErrValidation, errors.New("empty push token"))
	}
	return wrapUserErr(us.repo.SetPushToken(ctx, id, token))
}

func (us *UserService) SetReminders(ctx context.Context, id uuid.UUID, enabled bool) error {
	return wrapUserErr(us.repo.SetReminderEnabled(ctx, id, enabled))
}

func (us *UserService) Logout(ctx context.Context, id uuid.UUID) error {
	return wrapUserErr(us.repo.ClearPushToken(ctx, id))
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.Anonymous {
		if user.PasswordHash == nil {
			return errorvalues.ErrWrongCredentials
		}
		if err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
			return errorvalues.ErrWrongCredentials
		}
	}
	if err = us.repo.Delete(ctx, user.ID); err != nil {
		return wrapUserErr(err)
	}
	if err = us.activityRepo.DeleteAll(ctx, user.ID); err != nil {
		return errors.New("activity repository deletion error: " + err.Error())
	}
	return nil
}

func wrapUserErr(err error) error {
	if err == nil || errors.Is(err, errorvalues.ErrUserNotFound) {
		return err
	}
	return errors.New("repository error: " + err.Error())
}
