package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Verified against when a login hits an unknown email, so both miss and
// mismatch cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

const minPasswordLength = 6

type AuthService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	securityLogs repository.SecurityLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	clock        Clock
	sessionTTL   time.Duration
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	securityLogs repository.SecurityLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	clock Clock,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		securityLogs: securityLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		clock:        clock,
		sessionTTL:   sessionTTL,
	}
}

type RegisterInput struct {
	Name            string
	Surname         string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	RoleLabel       string
	Address         string
}

// Register validates the registration form, hashes the password and persists
// the new user. Exactly one row is written on success, none on any failure.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (uint, error) {
	name := strings.TrimSpace(input.Name)
	surname := strings.TrimSpace(input.Surname)
	email := utils.NormalizeEmail(input.Email)

	if name == "" || surname == "" || email == "" || input.Password == "" {
		return 0, ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return 0, ErrPasswordMismatch
	}
	if len(input.Password) < minPasswordLength {
		return 0, ErrPasswordTooShort
	}

	// Pre-check gives the friendly conflict message; the unique index on
	// correo closes the race between check and insert.
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	user := &entity.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		Address:      strings.TrimSpace(input.Address),
		Role:         entity.RoleFromLabel(input.RoleLabel),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.UserRegistered, map[string]any{"rol": user.Role})

	if s.emailSender != nil {
		// Best effort: a failed welcome email never rolls back the account.
		_ = s.emailSender.SendWelcomeEmail(ctx, user.Email, user.FullName())
	}

	return user.ID, nil
}

// Login verifies the credentials and creates a server-side session holding a
// copy of the user's profile. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, ipAddress, userAgent *string) (*entity.Session, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, password)
		_ = s.logSecurity(ctx, nil, ipAddress, entity.LoginFailed, map[string]any{"correo": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, password) {
		_ = s.logSecurity(ctx, &user.ID, ipAddress, entity.LoginFailed, map[string]any{"correo": email})
		return nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		ID:        uuid.New(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: s.now().Add(s.ttl()),
	}
	session.Snapshot(user)

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, ipAddress, entity.LoginSuccess, nil)
	return session, nil
}

// Logout revokes the session row; the cookie is cleared by the handler.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID, userID *uint, ipAddress *string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uint,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) ttl() time.Duration {
	if s.sessionTTL > 0 {
		return s.sessionTTL
	}
	return 30 * 24 * time.Hour
}
