package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hqdang/Polliwog/config"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpValidity = 5 * time.Minute

// Claims is the JWT payload shared by token issuance and the auth middleware.
type Claims struct {
	UserID          uint   `json:"user_id"`
	Email           string `json:"email"`
	RoleID          uint   `json:"role_id"`
	Role            string `json:"role"`
	IsEmailVerified bool   `json:"is_email_verified"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	VerifyEmailOtp(req dto.VerifyOtpRequest) error
	// Login checks credentials and mails a login OTP; tokens are only issued
	// by VerifyLoginOtp.
	Login(req dto.LoginRequest) error
	VerifyLoginOtp(req dto.VerifyOtpRequest) (*dto.TokenPairResponse, error)
	Refresh(refreshToken string) (*dto.TokenPairResponse, error)
	ForgotPassword(email string) error
	ResetPassword(token, newPassword string) error
	ParseAccessToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.TokenRepository,
	mailer Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role, err := s.roleRepo.FindByName(model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("default role lookup failed: %w", err)
	}

	otp, err := generateOtp()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpValidity)

	user := model.User{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        string(hashed),
		Gender:          req.Gender,
		VerificationOtp: &otp,
		OtpExpiry:       &expiry,
		RoleID:          role.ID,
		Status:          model.StatusActive,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailer.Send(user.Email, "Verify your email",
		fmt.Sprintf("Your verification OTP is: %s. This OTP will expire in 5 minutes.", otp)); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Register: failed to send verification mail")
	}

	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) VerifyEmailOtp(req dto.VerifyOtpRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return ErrUserNotFound
	}
	if user.VerificationOtp == nil || *user.VerificationOtp != req.Otp {
		return ErrInvalidOtp
	}
	if user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		return ErrOtpExpired
	}

	user.IsEmailVerified = true
	user.VerificationOtp = nil
	user.OtpExpiry = nil
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

func (s *authService) Login(req dto.LoginRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return ErrInvalidCredentials
	}
	if user.Status != model.StatusActive {
		return ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return ErrInvalidCredentials
	}
	if !user.IsEmailVerified {
		return ErrEmailNotVerified
	}

	otp, err := generateOtp()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(otpValidity)
	user.LoginOtp = &otp
	user.OtpExpiry = &expiry
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to store login OTP: %w", err)
	}

	if err := s.mailer.Send(user.Email, "Login OTP",
		fmt.Sprintf("Your OTP for login is: %s. This OTP will expire in 5 minutes.", otp)); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to send OTP mail")
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

func (s *authService) VerifyLoginOtp(req dto.VerifyOtpRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.LoginOtp == nil || *user.LoginOtp != req.Otp {
		return nil, ErrInvalidOtp
	}
	if user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		return nil, ErrOtpExpired
	}

	user.LoginOtp = nil
	user.OtpExpiry = nil
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to clear login OTP: %w", err)
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *model.User) (*dto.TokenPairResponse, error) {
	access, err := s.signToken(user, s.cfg.JWT.AccessSecret, s.cfg.JWT.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(&model.Token{
		UserID: user.ID,
		Token:  refresh,
		Type:   model.TokenTypeRefresh,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	resp := dto.TokenPairResponse{
		Message:      "Login successful",
		AccessToken:  access,
		RefreshToken: refresh,
	}
	copier.Copy(&resp.User, user)
	return &resp, nil
}

func (s *authService) signToken(user *model.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:          user.ID,
		Email:           user.Email,
		RoleID:          user.RoleID,
		Role:            user.Role.Name,
		IsEmailVerified: user.IsEmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique jti so two tokens minted in the same second still differ,
			// which token rotation relies on.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) parseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) ParseAccessToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, s.cfg.JWT.AccessSecret)
}

func (s *authService) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.parseToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, err
	}
	if _, err := s.tokenRepo.Find(claims.UserID, refreshToken, model.TokenTypeRefresh); err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Status != model.StatusActive {
		return nil, ErrAccountInactive
	}

	// Rotate: the presented refresh token is replaced by the new pair.
	if err := s.tokenRepo.DeleteByUserAndType(user.ID, model.TokenTypeRefresh); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	resp, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	resp.Message = "Token refreshed"
	return resp, nil
}

func (s *authService) ForgotPassword(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Do not reveal whether the address exists.
		log.Warn().Str("email", email).Msg("ForgotPassword: unknown email")
		return nil
	}

	token, err := s.signToken(user, s.cfg.JWT.AccessSecret, time.Hour)
	if err != nil {
		return err
	}
	if err := s.tokenRepo.DeleteByUserAndType(user.ID, model.TokenTypeForgotPassword); err != nil {
		return fmt.Errorf("failed to clear old reset tokens: %w", err)
	}
	if err := s.tokenRepo.Create(&model.Token{
		UserID: user.ID,
		Token:  token,
		Type:   model.TokenTypeForgotPassword,
	}); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return s.mailer.Send(user.Email, "Reset your password",
		fmt.Sprintf("Use this token to reset your password: %s. It expires in 1 hour.", token))
}

func (s *authService) ResetPassword(token, newPassword string) error {
	claims, err := s.parseToken(token, s.cfg.JWT.AccessSecret)
	if err != nil {
		return err
	}
	if _, err := s.tokenRepo.Find(claims.UserID, token, model.TokenTypeForgotPassword); err != nil {
		return ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.tokenRepo.DeleteByUserAndType(user.ID, model.TokenTypeForgotPassword)
}
