package usecase

import (
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso de gestión de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios sin el hash de contraseña.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:             u.ID,
			Username:       u.Username,
			Email:          u.Email,
			Name:           u.Name,
			ProfilePicture: u.ProfilePicture,
		})
	}
	return out, nil
}

// Update actualiza el perfil propio. actorID debe coincidir con id
// (ErrForbidden si no); un password nuevo se re-hashea con bcrypt.
func (uc *UserUseCase) Update(actorID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actorID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil && *in.Username != user.Username {
		existing, _ := uc.repo.GetByUsername(*in.Username)
		if existing != nil {
			return nil, domain.ErrUsernameAlreadyExists
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, _ := uc.repo.GetByEmail(*in.Email)
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
	}, nil
}
