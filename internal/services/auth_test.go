package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	jwt    *services.MockJWTGenerator
	otp    *services.MockOTPStore
	sender *services.MockOTPSender
	google *services.MockGoogleProvider
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		otp:    services.NewMockOTPStore(ctrl),
		sender: services.NewMockOTPSender(ctrl),
		google: services.NewMockGoogleProvider(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.jwt, m.otp, m.sender, m.google), m
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		userName     string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantKind     error
		skipReader   bool
	}{
		{
			name:     "successful registration",
			userName: "Alice",
			password: "password123",
			email:    "alice@example.com",
		},
		{
			name:         "user already exists",
			userName:     "Bob",
			password:     "password123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantKind:     services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			userName:  "Eve",
			password:  "password123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantKind:  services.ErrStoreFailure,
		},
		{
			name:      "writer error",
			userName:  "Carol",
			password:  "password123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantKind:  services.ErrStoreFailure,
		},
		{
			name:       "short name",
			userName:   "A",
			password:   "password123",
			email:      "a@example.com",
			wantKind:   services.ErrInvalidArgument,
			skipReader: true,
		},
		{
			name:       "bad email",
			userName:   "Dan",
			password:   "password123",
			email:      "not-an-email",
			wantKind:   services.ErrInvalidArgument,
			skipReader: true,
		},
		{
			name:       "short password",
			userName:   "Dan",
			password:   "short",
			email:      "dan@example.com",
			wantKind:   services.ErrInvalidArgument,
			skipReader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)

			if !tt.skipReader {
				m.reader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if !tt.skipReader && tt.existingUser == nil && tt.readerErr == nil {
				m.writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) error {
						assert.Equal(t, tt.userName, u.Name)
						assert.Equal(t, tt.email, *u.Email)
						assert.Equal(t, models.RoleUser, u.Role)
						assert.True(t, u.IsActive)
						assert.False(t, u.IsVerified)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	email := "alice@example.com"
	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			user:      &models.UserDB{UserID: userID, Email: &email, Role: models.RoleAdmin, PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			wantErr:   services.ErrUserDoesNotExist,
			loginPass: password,
		},
		{
			name:      "invalid password",
			user:      &models.UserDB{UserID: uuid.New(), PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "account without password",
			user:      &models.UserDB{UserID: uuid.New()},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   services.ErrStoreFailure,
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			user:      &models.UserDB{UserID: userID, PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)

			m.reader.EXPECT().
				GetByEmail(gomock.Any(), email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.user.PasswordHash != "" && tt.loginPass == password {
				m.jwt.EXPECT().
					Generate(gomock.Any(), jwt.Claims{UserID: tt.user.UserID, Email: email, Role: string(tt.user.Role)}).
					Return(tt.expectJWT, tt.jwtErr)
			}

			res, err := svc.Login(context.Background(), email, tt.loginPass)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrStoreFailure) {
					assert.ErrorIs(t, err, services.ErrStoreFailure)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectJWT, res.Token)
				assert.Equal(t, tt.user.UserID, res.User.UserID)
			}
		})
	}
}

func TestAuthService_GoogleLogin(t *testing.T) {
	t.Run("creates verified user on first login", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.google.EXPECT().Profile(gomock.Any(), "code").
			Return(&models.GoogleProfile{Email: "g@example.com", Name: "G User"}, nil)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "g@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				assert.Equal(t, "G User", u.Name)
				assert.True(t, u.IsVerified)
				assert.NotEmpty(t, u.PasswordHash)
				return nil
			})
		m.jwt.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c jwt.Claims) (string, error) {
				assert.Equal(t, "g@example.com", c.Email)
				assert.Equal(t, "user", c.Role)
				return "tok", nil
			})

		res, err := svc.GoogleLogin(context.Background(), "code")
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
	})

	t.Run("existing user", func(t *testing.T) {
		svc, m := newAuthService(t)
		existing := &models.UserDB{UserID: uuid.New(), Role: models.RoleAdmin}

		m.google.EXPECT().Profile(gomock.Any(), "code").
			Return(&models.GoogleProfile{Email: "admin@example.com"}, nil)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(existing, nil)
		m.jwt.EXPECT().Generate(gomock.Any(), jwt.Claims{UserID: existing.UserID, Email: "admin@example.com", Role: "admin"}).
			Return("tok", nil)

		res, err := svc.GoogleLogin(context.Background(), "code")
		require.NoError(t, err)
		assert.Equal(t, existing.UserID, res.User.UserID)
	})

	t.Run("missing email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.google.EXPECT().Profile(gomock.Any(), "code").Return(&models.GoogleProfile{Name: "x"}, nil)

		_, err := svc.GoogleLogin(context.Background(), "code")
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
		assert.EqualError(t, err, "Email not provided by Google")
	})

	t.Run("exchange error", func(t *testing.T) {
		svc, m := newAuthService(t)
		exchangeErr := errors.New("bad code")

		m.google.EXPECT().Profile(gomock.Any(), "code").Return(nil, exchangeErr)

		_, err := svc.GoogleLogin(context.Background(), "code")
		assert.ErrorIs(t, err, exchangeErr)
	})
}

func TestAuthService_SendOTP(t *testing.T) {
	t.Run("stores and sends the same code", func(t *testing.T) {
		svc, m := newAuthService(t)

		var stored string
		m.otp.EXPECT().Set(gomock.Any(), "9876543210", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, code string) error {
				stored = code
				return nil
			})
		m.sender.EXPECT().Send(gomock.Any(), "9876543210", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, code string) error {
				assert.Equal(t, stored, code)
				return nil
			})

		require.NoError(t, svc.SendOTP(context.Background(), "9876543210"))
		assert.Len(t, stored, services.OTPLength)
	})

	t.Run("invalid mobile", func(t *testing.T) {
		svc, _ := newAuthService(t)

		err := svc.SendOTP(context.Background(), "12ab")
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.otp.EXPECT().Set(gomock.Any(), "9876543210", gomock.Any()).Return(errors.New("redis down"))

		err := svc.SendOTP(context.Background(), "9876543210")
		assert.ErrorIs(t, err, services.ErrStoreFailure)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	const mobile = "9876543210"

	t.Run("creates verified user and consumes code", func(t *testing.T) {
		svc, m := newAuthService(t)

		gomock.InOrder(
			m.otp.EXPECT().Get(gomock.Any(), mobile).Return("123456", nil),
			m.otp.EXPECT().Delete(gomock.Any(), mobile).Return(nil),
		)
		m.reader.EXPECT().GetByMobile(gomock.Any(), mobile).Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				assert.Equal(t, mobile, *u.MobileNumber)
				assert.True(t, u.IsVerified)
				assert.Empty(t, u.PasswordHash)
				return nil
			})
		m.jwt.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c jwt.Claims) (string, error) {
				assert.Equal(t, mobile, c.Mobile)
				assert.Empty(t, c.Email)
				return "tok", nil
			})

		res, err := svc.VerifyOTP(context.Background(), mobile, "123456")
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
	})

	t.Run("marks existing user verified", func(t *testing.T) {
		svc, m := newAuthService(t)
		user := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser}

		m.otp.EXPECT().Get(gomock.Any(), mobile).Return("123456", nil)
		m.otp.EXPECT().Delete(gomock.Any(), mobile).Return(nil)
		m.reader.EXPECT().GetByMobile(gomock.Any(), mobile).Return(user, nil)
		m.writer.EXPECT().MarkVerified(gomock.Any(), user.UserID).Return(nil)
		m.jwt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tok", nil)

		res, err := svc.VerifyOTP(context.Background(), mobile, "123456")
		require.NoError(t, err)
		assert.True(t, res.User.IsVerified)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.otp.EXPECT().Get(gomock.Any(), mobile).Return("123456", nil)

		_, err := svc.VerifyOTP(context.Background(), mobile, "000000")
		assert.ErrorIs(t, err, services.ErrInvalidOTP)
		assert.True(t, services.IsAuthError(err))
	})

	t.Run("expired code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.otp.EXPECT().Get(gomock.Any(), mobile).Return("", nil)

		_, err := svc.VerifyOTP(context.Background(), mobile, "")
		assert.ErrorIs(t, err, services.ErrInvalidOTP)
	})
}
