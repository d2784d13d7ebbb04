package repository

import (
	"errors"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.db.Model(&models.UserModel{}).Where("id = ?", userID).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	return r.db.Create(&userModel).Error
}
