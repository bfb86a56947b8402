package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"time"

	"github.com/books-app/backend/internal/cache"
	"github.com/books-app/backend/internal/mailer"
	"github.com/books-app/backend/internal/models"
	"github.com/books-app/backend/internal/repository"
	"github.com/books-app/backend/internal/utils"
	"github.com/books-app/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// verificationCodeBytes sizes the random token mailed to new users.
const verificationCodeBytes = 8

type UserService struct {
	userRepo  *repository.UserRepository
	verifRepo *repository.VerificationRepository
	cache     cache.Cache
	mailer    mailer.Mailer
	jwtSecret string
}

func NewUserService(
	userRepo *repository.UserRepository,
	verifRepo *repository.VerificationRepository,
	c cache.Cache,
	m mailer.Mailer,
	jwtSecret string,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		verifRepo: verifRepo,
		cache:     c,
		mailer:    m,
		jwtSecret: jwtSecret,
	}
}

// RegisteredUser is the registration response. Password deliberately
// echoes the caller's submitted plaintext, never the stored hash.
type RegisteredUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     int       `json:"role"`
	Verified bool      `json:"verified"`
	Email    string    `json:"email"`
}

// Register creates an unverified account and mails its confirmation
// link. Registration is all-or-nothing for the caller: if the mail cannot
// be delivered the freshly created user is deleted again.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*RegisteredUser, error) {
	start := time.Now()

	logger.Log.Debug("Processing user registration",
		zap.String("username", username),
		zap.String("email", email),
	)

	// 1. Validate input
	if username == "" || password == "" || email == "" {
		return nil, ErrMissingFields
	}
	if !emailRegex.MatchString(email) {
		logger.Log.Warn("Registration rejected: malformed email",
			zap.String("email", email),
		)
		return nil, ErrInvalidMail
	}

	// 2. Check duplicates, email first
	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	existing, err = s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	// 3. Hash password, never persist plaintext
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// 4. Create user (unverified, regular role)
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	// 5. Issue a verification code tied to the new user
	code, err := generateVerificationCode()
	if err != nil {
		logger.Log.Error("Failed to generate verification code", zap.Error(err))
		return nil, err
	}

	verification := &models.VerificationCode{
		ID:     uuid.New(),
		Code:   code,
		UserID: user.ID,
	}

	if err := s.verifRepo.CreateCode(verification); err != nil {
		logger.Log.Error("Failed to store verification code",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	// 6. Mail the confirmation link. On failure, roll the user back so
	// registration stays all-or-nothing. The rollback itself is not
	// retried; if it fails too, only the outer error is surfaced.
	if err := s.mailer.SendVerification(email, verification.ID, code); err != nil {
		logger.Log.Warn("Verification mail failed, rolling back user",
			zap.String("user_id", user.ID.String()),
			zap.String("email", email),
			zap.Error(err),
		)

		if delErr := s.userRepo.DeleteUser(user.ID); delErr != nil {
			logger.Log.Error("Rollback delete failed, orphaned user left behind",
				zap.String("user_id", user.ID.String()),
				zap.Error(delErr),
			)
		}

		return nil, ErrInvalidMail
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
		zap.Duration("total_duration", time.Since(start)),
	)

	return &RegisteredUser{
		ID:       user.ID,
		Username: user.Username,
		Password: password,
		Role:     user.Role,
		Verified: user.Verified,
		Email:    user.Email,
	}, nil
}

// Login checks the credentials and issues a bearer token carrying the
// user's id. Tokens have no expiry.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	logger.Log.Debug("Processing user login",
		zap.String("username", username),
	)

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to get user by username",
			zap.String("username", username),
			zap.Error(err),
		)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("username", username),
			zap.Error(err),
		)
		return "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: incorrect password",
			zap.String("user_id", user.ID.String()),
		)
		return "", ErrIncorrectPassword
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return "", err
	}

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return token, nil
}

// Verify flips the owning user's verified flag when the mailed code
// matches. Repeating the call with the same pair is a no-op success.
func (s *UserService) Verify(ctx context.Context, codeID uuid.UUID, code string) error {
	verification, err := s.verifRepo.GetCodeByID(codeID)
	if err != nil {
		logger.Log.Error("Failed to load verification code",
			zap.String("code_id", codeID.String()),
			zap.Error(err),
		)
		return err
	}
	if verification == nil {
		return ErrCodeNotFound
	}

	if verification.Code != code {
		logger.Log.Warn("Verification failed: incorrect code",
			zap.String("code_id", codeID.String()),
		)
		return ErrIncorrectCode
	}

	if err := s.userRepo.SetVerified(verification.UserID); err != nil {
		logger.Log.Error("Failed to mark user verified",
			zap.String("user_id", verification.UserID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("User verified",
		zap.String("user_id", verification.UserID.String()),
	)

	return nil
}

// GetProfile returns the requester's own profile projection, read
// through the profile cache. The password hash is never part of it.
func (s *UserService) GetProfile(ctx context.Context, requesterID uuid.UUID) (models.Profile, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.ProfileKey(requesterID), cache.DefaultTTL, func() (models.Profile, error) {
		user, err := s.userRepo.GetUserByID(requesterID)
		if err != nil {
			return models.Profile{}, err
		}
		if user == nil {
			return models.Profile{}, ErrUserNotFound
		}
		return user.Profile(), nil
	})
}

// PromoteToAdmin grants the target exactly the administrator role. Only
// an existing administrator may call it; the target's cached profile is
// invalidated before the response.
func (s *UserService) PromoteToAdmin(ctx context.Context, targetID uuid.UUID, requesterID uuid.UUID) (models.Profile, error) {
	requester, err := s.userRepo.GetUserByID(requesterID)
	if err != nil {
		logger.Log.Error("Failed to resolve requester",
			zap.String("requester_id", requesterID.String()),
			zap.Error(err),
		)
		return models.Profile{}, err
	}
	if requester == nil || !requester.IsAdmin() {
		logger.Log.Warn("Promotion rejected: requester is not an administrator",
			zap.String("requester_id", requesterID.String()),
		)
		return models.Profile{}, ErrNotAdministrator
	}

	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		logger.Log.Error("Failed to load promotion target",
			zap.String("target_id", targetID.String()),
			zap.Error(err),
		)
		return models.Profile{}, err
	}
	if target == nil {
		return models.Profile{}, ErrUserNotFound
	}

	if err := s.userRepo.SetRole(targetID, models.RoleAdmin); err != nil {
		logger.Log.Error("Failed to set role",
			zap.String("target_id", targetID.String()),
			zap.Error(err),
		)
		return models.Profile{}, err
	}

	if err := s.cache.Delete(ctx, cache.ProfileKey(targetID)); err != nil {
		logger.Log.Error("Failed to invalidate profile cache",
			zap.String("target_id", targetID.String()),
			zap.Error(err),
		)
		return models.Profile{}, err
	}

	logger.Log.Info("User promoted to administrator",
		zap.String("target_id", targetID.String()),
		zap.String("requester_id", requesterID.String()),
	)

	target.Role = models.RoleAdmin
	return target.Profile(), nil
}

func generateVerificationCode() (string, error) {
	buf := make([]byte, verificationCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
