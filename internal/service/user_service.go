package service

import (
	"context"
	"strings"

	"linkhive/internal/models"
	"linkhive/internal/repository"
	"linkhive/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles account registration, login and profile management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Headline  string `json:"headline"`
	Education string `json:"education"`
	Bio       string `json:"bio"`
}

// Register creates a new account. Emails are unique; duplicates conflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateName("first_name", in.FirstName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("last_name", in.LastName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Password:  string(hashed),
		Headline:  in.Headline,
		Education: in.Education,
		Bio:       in.Bio,
		Role:      models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the account profile. Wrong email
// and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetProfile returns a user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Headline     *string `json:"headline"`
	Education    *string `json:"education"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

// UpdateProfile applies partial updates to a user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		if err := validation.ValidateName("first_name", *in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		if err := validation.ValidateName("last_name", *in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Headline != nil {
		user.Headline = *in.Headline
	}
	if in.Education != nil {
		user.Education = *in.Education
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
