package repository

import "github.com/jhoicas/Taller-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los getters devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
}
