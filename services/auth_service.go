package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/utils"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordByEmail(ctx context.Context, email, hashedPassword string) error
}

type AuthService struct {
	users UserRepository
	otp   *models.OTPStore
	email *models.EmailService
}

func NewAuthService(users UserRepository, email *models.EmailService) *AuthService {
	return &AuthService{
		users: users,
		otp:   models.NewOTPStore(5 * time.Minute),
		email: email,
	}
}

// Signup stores the user with an argon2 password hash. Everything else is
// saved as submitted, duplicates included.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		UserType:  req.UserType,
	}
	return s.users.Create(ctx, user)
}

// Login matches the identifier against email or phone and verifies the
// password. On success it also issues a bearer token for the profile
// endpoint.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !valid {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ForgotPassword issues a 6-digit code held in process memory for five
// minutes. The code is returned to the caller (and ends up in the HTTP
// response — the original behaved this way, see DESIGN.md) and is also
// mailed best-effort when SMTP is configured.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	code := s.otp.Generate(user.Email)

	if s.email != nil {
		if err := s.email.SendOTPEmail(user.Email, code); err != nil {
			log.Println("Failed to send OTP email:", err)
		}
	}

	return code, nil
}

// ResetPassword consumes the code and re-hashes the password. A wrong or
// expired code fails without revealing which.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, password string) error {
	if !s.otp.Verify(email, code) {
		return ErrInvalidOTP
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.users.UpdatePasswordByEmail(ctx, email, hash)
}
