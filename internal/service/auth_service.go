package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/api/idtoken"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
	"github.com/luxestate/luxestate-api/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("session invalid or expired")
	ErrEmailAlreadyUsed   = errors.New("an account with this email already exists")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
	ErrPasswordPolicy     = errors.New("password must be at least 6 characters long")
	// ErrOTPInvalid covers wrong, expired and never-issued codes alike so the
	// response does not reveal which case occurred.
	ErrOTPInvalid        = errors.New("invalid or expired verification code")
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")
	ErrOTPDelivery       = errors.New("failed to send verification code")
	ErrAdminNotFound     = errors.New("account not found")
	ErrSelfDeletion      = errors.New("cannot remove your own account")
	ErrInvalidRole       = errors.New("role must be superuser or staff")
)

// OTPSender delivers a reset code to an email address.
type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *domain.Admin
}

type AuthService struct {
	admins   ports.AdminRepository
	otps     ports.OTPCodeRepository
	sessions ports.SessionRepository
	tokens   *ResetTokenStore
	mailer   OTPSender
	jwt      *util.JWTManager

	googleAudience string
	otpTTL         time.Duration
	otpLength      int
	now            func() time.Time
}

func NewAuthService(
	admins ports.AdminRepository,
	otps ports.OTPCodeRepository,
	sessions ports.SessionRepository,
	tokens *ResetTokenStore,
	mailer OTPSender,
	jwtManager *util.JWTManager,
	googleAudience string,
	otpTTL time.Duration,
	otpLength int,
) *AuthService {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	if otpLength <= 0 {
		otpLength = 6
	}
	return &AuthService{
		admins:         admins,
		otps:           otps,
		sessions:       sessions,
		tokens:         tokens,
		mailer:         mailer,
		jwt:            jwtManager,
		googleAudience: googleAudience,
		otpTTL:         otpTTL,
		otpLength:      otpLength,
		now:            time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, admin)
}

// LoginWithGoogle accepts a Google ID token for an email that already has an
// admin account. The back office is invite-only, so no account is created.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*LoginResult, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.googleAudience)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	email, _ := payload.Claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.startSession(ctx, admin)
}

func (s *AuthService) startSession(ctx context.Context, admin *domain.Admin) (*LoginResult, error) {
	token, expiresAt, err := s.jwt.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, admin.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

// Authenticate resolves a bearer token to its admin. The JWT signature and
// the stored session must both still be valid, so logout revokes access
// before the JWT itself expires.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Admin, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	if _, err := s.sessions.FindActiveSession(ctx, token); err != nil {
		return nil, ErrSessionInvalid
	}
	admin, err := s.admins.FindByID(ctx, claims.AdminID)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	return admin, nil
}

// RequestPasswordReset issues and emails an OTP. An unknown email is a
// silent no-op so the endpoint cannot be used to probe for accounts. The
// code is persisted before the delivery attempt; if SMTP fails the request
// fails even though a usable code is already in storage, and the client is
// expected to start over.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	normalized := normalizeEmail(email)
	if _, err := s.admins.FindByEmail(ctx, normalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	code, err := util.GenerateOTP(s.otpLength)
	if err != nil {
		return err
	}

	// Outstanding codes for the same email are left alone; verification
	// picks the most recent match.
	if _, err := s.otps.Create(ctx, normalized, code, s.now().Add(s.otpTTL)); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, normalized, code); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}
	return nil
}

// VerifyOTP validates a code and exchanges it for a short-lived reset token.
// The matched code row is deleted, making the code single-use.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	normalized := normalizeEmail(email)
	upperCode := strings.ToUpper(strings.TrimSpace(code))
	if upperCode == "" {
		return "", ErrOTPInvalid
	}

	otp, err := s.otps.FindMatch(ctx, normalized, upperCode, s.now())
	if err != nil {
		return "", ErrOTPInvalid
	}
	if err := s.otps.Delete(ctx, otp.ID); err != nil {
		return "", err
	}

	return s.tokens.Issue(normalized), nil
}

// ResetPassword finalizes a reset. Policy runs before any lookup so an
// invalid password never consumes the token or touches storage.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordPolicy
	}

	email, ok := s.tokens.Lookup(token)
	if !ok {
		return ErrResetTokenInvalid
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.admins.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}

	s.tokens.Consume(token)
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error {
	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordPolicy
	}

	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAdminNotFound
		}
		return err
	}
	if !util.VerifyPassword(currentPassword, admin.PasswordHash) {
		return ErrPasswordMismatch
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.admins.UpdatePassword(ctx, adminID, hash)
}

func (s *AuthService) ListStaff(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

func (s *AuthService) CreateStaff(ctx context.Context, name, email, password, role string) (*domain.Admin, error) {
	name = strings.TrimSpace(name)
	normalized := normalizeEmail(email)
	if name == "" || normalized == "" {
		return nil, errors.New("name and email are required")
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, ErrPasswordPolicy
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleStaff && role != domain.RoleSuperuser {
		return nil, ErrInvalidRole
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.Create(ctx, name, normalized, hash, role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) DeleteStaff(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfDeletion
	}
	return s.admins.Delete(ctx, targetID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
