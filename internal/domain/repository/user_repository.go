package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindByUsernameOrEmail(username, email string) (*entity.User, error)
}
