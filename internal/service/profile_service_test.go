package service_test

import (
	"context"
	"mime/multipart"
	"testing"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type photoStoreStub struct {
	saved *multipart.FileHeader
	path  string
	err   error
}

func (s *photoStoreStub) Save(_ uint, file *multipart.FileHeader) (string, error) {
	s.saved = file
	return s.path, s.err
}

func TestProfileService_Update(t *testing.T) {
	sessionID := uuid.New()

	t.Run("updates fields and refreshes snapshot", func(t *testing.T) {
		users := new(UserRepoMock)
		sessions := new(SessionRepoMock)
		logs := new(SecurityLogRepoMock)

		updated := &entity.User{ID: 7, Name: "Ana Maria", Email: "ana@mail.com"}
		users.On("UpdateFields", mock.Anything, uint(7), map[string]any{
			"nombre":   "Ana Maria",
			"telefono": "5559876",
		}).Return(nil).Once()
		users.On("FindByID", mock.Anything, uint(7)).Return(updated, nil).Once()
		sessions.On("RefreshSnapshot", mock.Anything, sessionID, updated).Return(nil).Once()
		logs.On("Log", mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ProfileUpdated
		})).Return(nil).Once()

		svc := service.NewProfileService(users, sessions, logs, nil)
		err := svc.Update(context.Background(), 7, sessionID, service.UpdateProfileInput{
			Name:  "  Ana Maria ",
			Phone: "5559876",
		})

		require.NoError(t, err)
		users.AssertExpectations(t)
		sessions.AssertExpectations(t)
		logs.AssertExpectations(t)
	})

	t.Run("empty form is a no-op", func(t *testing.T) {
		users := new(UserRepoMock)
		sessions := new(SessionRepoMock)

		svc := service.NewProfileService(users, sessions, nil, nil)
		err := svc.Update(context.Background(), 7, sessionID, service.UpdateProfileInput{})

		require.NoError(t, err)
		users.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "RefreshSnapshot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(UserRepoMock)
		users.On("UpdateFields", mock.Anything, uint(7), mock.Anything).
			Return(repository.ErrDuplicateEmail).Once()

		svc := service.NewProfileService(users, new(SessionRepoMock), nil, nil)
		err := svc.Update(context.Background(), 7, sessionID, service.UpdateProfileInput{
			Email: "ocupado@mail.com",
		})

		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("stored photo path lands on the user row", func(t *testing.T) {
		users := new(UserRepoMock)
		sessions := new(SessionRepoMock)
		store := &photoStoreStub{path: "imagenes/perfiles/user_7_foto.png"}

		updated := &entity.User{ID: 7}
		users.On("UpdateFields", mock.Anything, uint(7), map[string]any{
			"foto": "imagenes/perfiles/user_7_foto.png",
		}).Return(nil).Once()
		users.On("FindByID", mock.Anything, uint(7)).Return(updated, nil).Once()
		sessions.On("RefreshSnapshot", mock.Anything, sessionID, updated).Return(nil).Once()

		svc := service.NewProfileService(users, sessions, nil, store)
		err := svc.Update(context.Background(), 7, sessionID, service.UpdateProfileInput{
			Photo: &multipart.FileHeader{Filename: "foto.png"},
		})

		require.NoError(t, err)
		require.NotNil(t, store.saved)
		users.AssertExpectations(t)
	})

	t.Run("rejected photo aborts the update", func(t *testing.T) {
		users := new(UserRepoMock)
		store := &photoStoreStub{err: service.ErrFileType}

		svc := service.NewProfileService(users, new(SessionRepoMock), nil, store)
		err := svc.Update(context.Background(), 7, sessionID, service.UpdateProfileInput{
			Name:  "Ana",
			Photo: &multipart.FileHeader{Filename: "script.exe"},
		})

		assert.ErrorIs(t, err, service.ErrFileType)
		users.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}
