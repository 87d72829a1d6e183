package user

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

// unusablePassword marks accounts created without a password; it never
// matches a bcrypt comparison.
const unusablePassword = "!"

type (
	UserService interface {
		CreateUser(ctx context.Context, email, password, name string) (*entities.User, error)
		CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error)
		VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error)
		UpdateProfile(ctx context.Context, userID uint, req domain.UpdateUserRequest) (*entities.User, error)
		IsActive(ctx context.Context, userID uint) (bool, error)

		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID uint, req domain.UpdateUserRequest) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// NormalizeEmail lower-cases the domain part of an address and leaves the
// local part alone.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return unusablePassword, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.FieldError("password", err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends the same time as a real password check so unknown
// emails cannot be told apart by latency.
func burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("recipe-api-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *userService) CreateUser(ctx context.Context, email, password, name string) (*entities.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, domain.FieldError("email", domain.ErrEmailRequired)
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.FieldError("email", domain.ErrEmailExists)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:    email,
		Name:     name,
		Password: hash,
		IsActive: true,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.FieldError("email", err)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.CreateUser(ctx, email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			burnCompare(password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req domain.UpdateUserRequest) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email == "" {
			return nil, domain.FieldError("email", domain.ErrEmailRequired)
		}
		exists, err := s.userRepository.CheckEmailExists(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.FieldError("email", domain.ErrEmailExists)
		}
		user.Email = email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.FieldError("email", err)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) IsActive(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsActive, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	user, err := s.CreateUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if s.mailer != nil && s.mailer.Enabled() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>your Recipe API account for %s is ready.</p>", user.Name, user.Email)
		if err := s.mailer.SendMail(user.Email, domain.MessageRegistrationNotice, body); err != nil {
			log.Warnf("registration notice to user %d not sent: %v", user.ID, err)
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	role := domain.RoleUser
	if user.IsStaff {
		role = domain.RoleStaff
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, role)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.UpdateProfile(ctx, userID, req)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		Email: user.Email,
		Name:  user.Name,
	}
}
