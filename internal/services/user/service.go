package user

import (
	"errors"
	"fmt"
	"strings"

	"pullapi/internal/models"
	"pullapi/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the payload for creating a new user account.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AgentName string `json:"agentName"`
}

type Service interface {
	Register(input RegisterInput) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Register(input RegisterInput) (*models.User, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, errors.New("username and email are required")
	}
	if len(input.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Name:      input.Name,
		Phone:     input.Phone,
		AgentName: input.AgentName,
		Role:      "user",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
