package repository

import (
	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	Create(user *model.User) error
	ResetCredentials(userID uuid.UUID, hashedPassword, tokenVersion string) error
	UpdateTokenVersion(userID uuid.UUID, version string) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Role").Preload("Privileges").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Role").Preload("Privileges").First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepo) Create(user *model.User) error {
	return translateError(r.db.Create(user).Error)
}

// ResetCredentials swaps the password hash and the token version in one write,
// so a new password always retires the old sessions.
func (r *userRepo) ResetCredentials(userID uuid.UUID, hashedPassword, tokenVersion string) error {
	return affected(r.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password":      hashedPassword,
		"token_version": tokenVersion,
	}))
}

func (r *userRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	return affected(r.db.Model(&model.User{}).Where("id = ?", userID).Update("token_version", version))
}
