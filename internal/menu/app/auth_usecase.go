package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"restomenu/internal/menu/domain/entities"
	"restomenu/internal/menu/domain/services"
	"restomenu/internal/menu/ports/repositories"
	svc "restomenu/internal/menu/ports/services"
	"restomenu/pkg/logger"
)

const (
	methodLogin  = "Login"
	methodSignup = "Signup"

	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgStartSignup         = "starting user signup"
	msgInvalidUsername     = "invalid username"
	msgInvalidPassword     = "invalid password"
	msgUsernameTaken       = "username or email already taken"
	msgUserSignedUp        = "user signed up successfully"

	msgErrFindingUser   = "error finding user by username"
	msgErrHashPassword  = "failed to hash password"
	msgErrCreateUser    = "failed to create user"
	msgErrEstablishing  = "failed to establish session"
	msgErrCheckingTaken = "failed to check existing user"

	errCtxValidatingUsername  = "validating username"
	errCtxValidatingPassword  = "validating password"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding user"
	errCtxCheckingUser        = "checking existing user"
	errCtxUsernameRegistered  = "username already registered"
	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating user"
	errCtxEstablishingSession = "establishing session"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
)

// AuthUseCaseImpl реализует аутентификацию по имени пользователя и паролю.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	sessionSvc  svc.SessionService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	sessionSvc svc.SessionService,
) *AuthUseCaseImpl {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		sessionSvc:  sessionSvc,
	}
}

// Login проверяет учетные данные и открывает сессию. Несуществующее имя
// и неверный пароль дают один и тот же результат, чтобы по ответу нельзя
// было перечислять зарегистрированные имена.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !a.passwordSvc.Verify(ctx, password, user.PasswordHash) {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	token, _, err := a.sessionSvc.Establish(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrEstablishing, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxEstablishingSession, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return user, token, nil
}

// Signup регистрирует нового пользователя и сразу открывает сессию.
func (a *AuthUseCaseImpl) Signup(ctx context.Context, username, email, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup), zap.String("username", username))
	log.Debug(ctx, msgStartSignup)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		log.Debug(ctx, msgInvalidUsername)
		return nil, "", fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrUsernameLength)
	}
	if len(password) < services.MinPasswordLength {
		log.Debug(ctx, msgInvalidPassword)
		return nil, "", fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrPasswordTooShort)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := a.userRepo.FindByUsername(ctx, username); err == nil {
		log.Debug(ctx, msgUsernameTaken)
		return nil, "", fmt.Errorf("%s: %w", errCtxUsernameRegistered, entities.ErrUserAlreadyExists)
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckingTaken, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Provider:     entities.ProviderLocal,
	}
	created, err := a.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			log.Debug(ctx, msgUsernameTaken)
			return nil, "", fmt.Errorf("%s: %w", errCtxUsernameRegistered, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	token, _, err := a.sessionSvc.Establish(ctx, created.ID, created.Username)
	if err != nil {
		log.Error(ctx, msgErrEstablishing, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxEstablishingSession, err)
	}

	log.Info(ctx, msgUserSignedUp, zap.String("userID", created.ID))
	return created, token, nil
}
