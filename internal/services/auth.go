package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// OTPLength is the number of digits of a one-time password.
const OTPLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByMobile(ctx context.Context, mobile string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, claims jwt.Claims) (string, error)
}

// OTPStore keeps one pending code per mobile number.
type OTPStore interface {
	Set(ctx context.Context, mobile, code string) error
	Get(ctx context.Context, mobile string) (string, error)
	Delete(ctx context.Context, mobile string) error
}

// OTPSender delivers a code to a mobile number.
type OTPSender interface {
	Send(ctx context.Context, mobile, code string) error
}

// GoogleProvider runs the Google OAuth code flow.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Profile(ctx context.Context, code string) (*models.GoogleProfile, error)
}

// AuthService handles sign-up, sign-in, Google login and mobile OTP login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	otp    OTPStore
	sender OTPSender
	google GoogleProvider
}

// NewAuthService creates a new AuthService instance. otp, sender and google
// may be nil when the matching login method is not served.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	otp OTPStore,
	sender OTPSender,
	google GoogleProvider,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		otp:    otp,
		sender: sender,
		google: google,
	}
}

func validateSignup(name, email, password string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(name)); n < 2 || n > 100 {
		return invalidArgument("name must be between 2 and 100 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return invalidArgument("invalid email address")
	}
	if utf8.RuneCountInString(password) < 8 {
		return invalidArgument("password must be at least 8 characters")
	}
	return nil
}

// Register creates a password user with role user.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) error {
	if err := validateSignup(name, email, password); err != nil {
		return err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return storeError("failed to check user", err)
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	now := time.Now().UTC()
	newUser := &models.UserDB{
		UserID:       uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        &email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.writer.Save(ctx, newUser); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return storeError("failed to save user", err)
	}

	return nil
}

// Login authenticates a password user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, storeError("failed to get user", err)
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, ErrUserDoesNotExist
	}

	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, *user, jwt.Claims{Email: email})
}

// GoogleAuthURL returns the consent page URL carrying state.
func (svc *AuthService) GoogleAuthURL(state string) string {
	return svc.google.AuthCodeURL(state)
}

// GoogleLogin exchanges an authorization code, creating a verified user on
// first login, and returns a JWT token.
func (svc *AuthService) GoogleLogin(ctx context.Context, code string) (*models.AuthResult, error) {
	profile, err := svc.google.Profile(ctx, code)
	if err != nil {
		logger.Log.Errorw("google exchange failed", "err", err)
		return nil, fmt.Errorf("google exchange: %w", err)
	}
	if profile.Email == "" {
		return nil, invalidArgument("Email not provided by Google")
	}

	user, err := svc.reader.GetByEmail(ctx, profile.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, storeError("failed to get user", err)
	}

	if user == nil {
		// unusable random password, the account signs in through Google only
		secret := make([]byte, 16)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}

		name := profile.Name
		if name == "" {
			name = strings.SplitN(profile.Email, "@", 2)[0]
		}
		now := time.Now().UTC()
		email := profile.Email
		user = &models.UserDB{
			UserID:       uuid.New(),
			Name:         name,
			Email:        &email,
			PasswordHash: string(hashed),
			Role:         models.RoleUser,
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := svc.writer.Save(ctx, user); err != nil {
			logger.Log.Errorw("failed to save google user", "err", err)
			return nil, storeError("failed to save user", err)
		}
		logger.Log.Infow("google user created", "userID", user.UserID)
	}

	return svc.issue(ctx, *user, jwt.Claims{Email: profile.Email})
}

func validateMobile(mobile string) error {
	if len(mobile) < 10 || len(mobile) > 15 {
		return invalidArgument("invalid mobile number")
	}
	for _, r := range mobile {
		if !unicode.IsDigit(r) {
			return invalidArgument("invalid mobile number")
		}
	}
	return nil
}

func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}

// SendOTP stores a fresh code for mobile and delivers it.
func (svc *AuthService) SendOTP(ctx context.Context, mobile string) error {
	if err := validateMobile(mobile); err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		logger.Log.Errorw("failed to generate otp", "err", err)
		return err
	}

	if err := svc.otp.Set(ctx, mobile, code); err != nil {
		logger.Log.Errorw("failed to store otp", "mobile", mobile, "err", err)
		return storeError("failed to store otp", err)
	}

	if err := svc.sender.Send(ctx, mobile, code); err != nil {
		logger.Log.Errorw("failed to send otp", "mobile", mobile, "err", err)
		return fmt.Errorf("failed to send otp: %w", err)
	}

	return nil
}

// VerifyOTP consumes the code stored for mobile. The first successful
// verification creates a verified user.
func (svc *AuthService) VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResult, error) {
	if err := validateMobile(mobile); err != nil {
		return nil, err
	}

	stored, err := svc.otp.Get(ctx, mobile)
	if err != nil {
		logger.Log.Errorw("failed to read otp", "mobile", mobile, "err", err)
		return nil, storeError("failed to read otp", err)
	}
	if stored == "" || stored != code {
		logger.Log.Errorw("otp mismatch", "mobile", mobile)
		return nil, ErrInvalidOTP
	}

	if err := svc.otp.Delete(ctx, mobile); err != nil {
		logger.Log.Errorw("failed to delete otp", "mobile", mobile, "err", err)
		return nil, storeError("failed to delete otp", err)
	}

	user, err := svc.reader.GetByMobile(ctx, mobile)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, storeError("failed to get user", err)
	}

	switch {
	case user == nil:
		now := time.Now().UTC()
		m := mobile
		user = &models.UserDB{
			UserID:       uuid.New(),
			Name:         mobile,
			MobileNumber: &m,
			Role:         models.RoleUser,
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := svc.writer.Save(ctx, user); err != nil {
			logger.Log.Errorw("failed to save mobile user", "err", err)
			return nil, storeError("failed to save user", err)
		}
	case !user.IsVerified:
		if err := svc.writer.MarkVerified(ctx, user.UserID); err != nil {
			logger.Log.Errorw("failed to verify user", "userID", user.UserID, "err", err)
			return nil, storeError("failed to verify user", err)
		}
		user.IsVerified = true
	}

	return svc.issue(ctx, *user, jwt.Claims{Mobile: mobile})
}

func (svc *AuthService) issue(ctx context.Context, user models.UserDB, claims jwt.Claims) (*models.AuthResult, error) {
	claims.UserID = user.UserID
	claims.Role = string(user.Role)

	token, err := svc.jwt.Generate(ctx, claims)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	return &models.AuthResult{Token: token, User: user}, nil
}

// IsAuthError reports whether err should be answered with 401.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUserDoesNotExist) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidOTP)
}
