package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/utils"

	"github.com/google/uuid"
)

// PhotoStore persists uploaded profile photos and returns the public path
// stored on the user row.
type PhotoStore interface {
	Save(userID uint, file *multipart.FileHeader) (string, error)
}

type ProfileService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	securityLogs repository.SecurityLogRepository
	photos       PhotoStore
}

func NewProfileService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	securityLogs repository.SecurityLogRepository,
	photos PhotoStore,
) *ProfileService {
	return &ProfileService{
		users:        users,
		sessions:     sessions,
		securityLogs: securityLogs,
		photos:       photos,
	}
}

type UpdateProfileInput struct {
	Name    string
	Surname string
	Email   string
	Phone   string
	Address string
	Photo   *multipart.FileHeader
}

// Update applies the non-empty fields to the user row, stores the photo when
// one was uploaded, and refreshes the session snapshot so the change is
// visible immediately.
func (s *ProfileService) Update(ctx context.Context, userID uint, sessionID uuid.UUID, input UpdateProfileInput) error {
	fields := map[string]any{}

	if name := strings.TrimSpace(input.Name); name != "" {
		fields["nombre"] = name
	}
	if surname := strings.TrimSpace(input.Surname); surname != "" {
		fields["apellido"] = surname
	}
	if email := utils.NormalizeEmail(input.Email); email != "" {
		fields["correo"] = email
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		fields["telefono"] = phone
	}
	if address := strings.TrimSpace(input.Address); address != "" {
		fields["direccion"] = address
	}

	if input.Photo != nil && s.photos != nil {
		path, err := s.photos.Save(userID, input.Photo)
		if err != nil {
			return err
		}
		fields["foto"] = path
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.sessions.RefreshSnapshot(ctx, sessionID, user); err != nil {
		return err
	}

	if s.securityLogs != nil {
		_ = s.securityLogs.Log(ctx, &entity.SecurityLog{
			UserID: &userID,
			Action: entity.ProfileUpdated,
		})
	}
	return nil
}
