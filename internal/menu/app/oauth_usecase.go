package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"restomenu/internal/menu/domain/entities"
	"restomenu/internal/menu/ports/repositories"
	svc "restomenu/internal/menu/ports/services"
	"restomenu/pkg/logger"
)

const (
	methodResolveIdentity = "ResolveExternalIdentity"

	msgResolvingIdentity = "resolving external identity"
	msgIdentityKnown     = "external identity already linked"
	msgIdentityLinked    = "external identity linked to existing account"
	msgIdentityCreated   = "account created for external identity"

	msgErrResolvingIdentity = "failed to resolve external identity"

	errCtxResolvingIdentity = "identity resolution failed"
)

// OAuthUseCaseImpl связывает внешние профили OAuth с локальными учетными
// записями и открывает сессию для найденного пользователя.
type OAuthUseCaseImpl struct {
	userRepo   repositories.UserRepository
	sessionSvc svc.SessionService
}

// NewOAuthUseCase создает новый экземпляр сервиса OAuth-аутентификации.
func NewOAuthUseCase(userRepo repositories.UserRepository, sessionSvc svc.SessionService) *OAuthUseCaseImpl {
	return &OAuthUseCaseImpl{userRepo: userRepo, sessionSvc: sessionSvc}
}

// ResolveExternalIdentity находит или создает пользователя для внешнего
// профиля и открывает для него сессию. Поиск идет в три шага: по
// идентификатору провайдера, затем по адресу почты из профиля, затем
// создается новая учетная запись.
func (o *OAuthUseCaseImpl) ResolveExternalIdentity(ctx context.Context, profile *svc.ExternalProfile) (*entities.User, string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodResolveIdentity),
		zap.String("externalID", profile.ID),
	)
	log.Debug(ctx, msgResolvingIdentity)

	user, err := o.resolve(ctx, log, profile)
	if err != nil {
		log.Error(ctx, msgErrResolvingIdentity, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxResolvingIdentity, err)
	}

	token, _, err := o.sessionSvc.Establish(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrEstablishing, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxEstablishingSession, err)
	}
	return user, token, nil
}

func (o *OAuthUseCaseImpl) resolve(ctx context.Context, log *logger.Logger, profile *svc.ExternalProfile) (*entities.User, error) {
	user, err := o.userRepo.FindByFacebookID(ctx, profile.ID)
	if err == nil {
		log.Debug(ctx, msgIdentityKnown, zap.String("userID", user.ID))
		return user, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, err
	}

	if email := primaryEmail(profile); email != "" {
		user, err = o.userRepo.FindByEmail(ctx, email)
		if err == nil {
			linked, linkErr := o.userRepo.LinkFacebook(ctx, user.ID, profile.ID)
			if linkErr != nil {
				return nil, linkErr
			}
			log.Info(ctx, msgIdentityLinked, zap.String("userID", linked.ID))
			return linked, nil
		}
		if !errors.Is(err, entities.ErrUserNotFound) {
			return nil, err
		}
	}

	user, err = o.userRepo.Create(ctx, &entities.User{
		Username:   externalUsername(profile),
		Email:      externalEmail(profile),
		FacebookID: profile.ID,
		Provider:   entities.ProviderFacebook,
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, msgIdentityCreated, zap.String("userID", user.ID))
	return user, nil
}

func primaryEmail(profile *svc.ExternalProfile) string {
	if len(profile.Emails) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(profile.Emails[0]))
}

func externalUsername(profile *svc.ExternalProfile) string {
	if name := strings.TrimSpace(profile.DisplayName); name != "" {
		return name
	}
	return "user_" + profile.ID
}

func externalEmail(profile *svc.ExternalProfile) string {
	if email := primaryEmail(profile); email != "" {
		return email
	}
	return profile.ID + "@facebook.com"
}
