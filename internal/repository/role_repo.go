package repository

import (
	"errors"

	"go-pos-ledger/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByCode(code string) (*model.Role, error)
	ReplacePrivileges(role *model.Role, privileges []model.Privilege) error
	SeedDefaults() error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Privileges").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Privileges").Where("code = ?", code).First(&role).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &role, nil
}

func (r *roleRepo) ReplacePrivileges(role *model.Role, privileges []model.Privilege) error {
	if err := r.db.Model(role).Association("Privileges").Replace(privileges); err != nil {
		return err
	}
	role.Privileges = privileges
	return nil
}

func (r *roleRepo) SeedDefaults() error {
	for _, defaultRole := range model.DefaultRoles {
		var existingRole model.Role
		err := r.db.Where("code = ?", defaultRole.Code).First(&existingRole).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Role doesn't exist, create it
			if err := r.db.Create(&defaultRole).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
