package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
	svc "restomenu/internal/menu/ports/services"
)

func TestResolveExternalIdentity(t *testing.T) {
	facebookID := "fb-123"
	sessionToken := "session-token"
	expiry := time.Now().Add(24 * time.Hour)

	profile := &svc.ExternalProfile{
		ID:          facebookID,
		DisplayName: "Dana",
		Emails:      []string{"Dana@Example.com"},
	}

	linkedUser := &entities.User{
		ID:         "existing-id",
		Username:   "dana",
		Email:      "dana@example.com",
		FacebookID: facebookID,
		Provider:   entities.ProviderFacebook,
	}

	t.Run("known external id resolves directly", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		sessionSvc := new(mockSessionService)

		userRepo.On("FindByFacebookID", mock.Anything, facebookID).Return(linkedUser, nil).Once()
		sessionSvc.On("Establish", mock.Anything, linkedUser.ID, linkedUser.Username).
			Return(sessionToken, expiry, nil).Once()

		oauthUseCase := app.NewOAuthUseCase(userRepo, sessionSvc)
		user, token, err := oauthUseCase.ResolveExternalIdentity(context.Background(), profile)

		require.NoError(t, err)
		assert.Equal(t, linkedUser, user)
		assert.Equal(t, sessionToken, token)
		userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("matching email links existing account instead of creating", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		sessionSvc := new(mockSessionService)

		local := &entities.User{ID: "existing-id", Username: "dana", Email: "dana@example.com", Provider: entities.ProviderLocal}

		userRepo.On("FindByFacebookID", mock.Anything, facebookID).Return(nil, entities.ErrUserNotFound).Once()
		userRepo.On("FindByEmail", mock.Anything, "dana@example.com").Return(local, nil).Once()
		userRepo.On("LinkFacebook", mock.Anything, local.ID, facebookID).Return(linkedUser, nil).Once()
		sessionSvc.On("Establish", mock.Anything, linkedUser.ID, linkedUser.Username).
			Return(sessionToken, expiry, nil).Once()

		oauthUseCase := app.NewOAuthUseCase(userRepo, sessionSvc)
		user, _, err := oauthUseCase.ResolveExternalIdentity(context.Background(), profile)

		require.NoError(t, err)
		assert.Equal(t, facebookID, user.FacebookID)
		assert.Equal(t, entities.ProviderFacebook, user.Provider)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown identity creates a new account", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		sessionSvc := new(mockSessionService)

		createdUser := &entities.User{
			ID:         "new-id",
			Username:   "Dana",
			Email:      "dana@example.com",
			FacebookID: facebookID,
			Provider:   entities.ProviderFacebook,
		}

		userRepo.On("FindByFacebookID", mock.Anything, facebookID).Return(nil, entities.ErrUserNotFound).Once()
		userRepo.On("FindByEmail", mock.Anything, "dana@example.com").Return(nil, entities.ErrUserNotFound).Once()
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Username == "Dana" &&
				u.Email == "dana@example.com" &&
				u.FacebookID == facebookID &&
				u.Provider == entities.ProviderFacebook
		})).Return(createdUser, nil).Once()
		sessionSvc.On("Establish", mock.Anything, createdUser.ID, createdUser.Username).
			Return(sessionToken, expiry, nil).Once()

		oauthUseCase := app.NewOAuthUseCase(userRepo, sessionSvc)
		user, _, err := oauthUseCase.ResolveExternalIdentity(context.Background(), profile)

		require.NoError(t, err)
		assert.Equal(t, createdUser, user)
	})

	t.Run("profile without name or email falls back to synthetic values", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		sessionSvc := new(mockSessionService)

		bare := &svc.ExternalProfile{ID: facebookID}
		createdUser := &entities.User{ID: "new-id", Username: "user_" + facebookID}

		userRepo.On("FindByFacebookID", mock.Anything, facebookID).Return(nil, entities.ErrUserNotFound).Once()
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Username == "user_"+facebookID && u.Email == facebookID+"@facebook.com"
		})).Return(createdUser, nil).Once()
		sessionSvc.On("Establish", mock.Anything, createdUser.ID, createdUser.Username).
			Return(sessionToken, expiry, nil).Once()

		oauthUseCase := app.NewOAuthUseCase(userRepo, sessionSvc)
		user, _, err := oauthUseCase.ResolveExternalIdentity(context.Background(), bare)

		require.NoError(t, err)
		assert.Equal(t, createdUser, user)
		userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure surfaces as identity resolution error", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		userRepo.On("FindByFacebookID", mock.Anything, facebookID).Return(nil, errDatabaseOperation).Once()

		oauthUseCase := app.NewOAuthUseCase(userRepo, new(mockSessionService))
		_, _, err := oauthUseCase.ResolveExternalIdentity(context.Background(), profile)

		require.Error(t, err)
		assert.ErrorIs(t, err, errDatabaseOperation)
		assert.Contains(t, err.Error(), "identity resolution failed")
	})
}
