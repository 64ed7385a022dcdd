package service

import (
	"errors"
	"fmt"
	"log/slog"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"

	"github.com/google/uuid"
)

// SeedService installs the default privileges and roles and provisions staff accounts.
type SeedService interface {
	SeedAccessControl() error
	EnsureStaffUser(email, fullName, roleCode, password string, resetPassword bool) (*model.User, bool, error)
}

type seedService struct {
	privilegeRepo repository.PrivilegeRepository
	roleRepo      repository.RoleRepository
	userRepo      repository.UserRepository
}

func NewSeedService(privRepo repository.PrivilegeRepository, roleRepo repository.RoleRepository, userRepo repository.UserRepository) SeedService {
	return &seedService{
		privilegeRepo: privRepo,
		roleRepo:      roleRepo,
		userRepo:      userRepo,
	}
}

// SeedAccessControl is idempotent. Roles that already carry privileges are left as they are.
func (s *seedService) SeedAccessControl() error {
	if err := s.privilegeRepo.SeedDefaults(); err != nil {
		return fmt.Errorf("seed privileges: %w", err)
	}
	if err := s.roleRepo.SeedDefaults(); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	allPrivileges, err := s.privilegeRepo.FindAll()
	if err != nil {
		return err
	}
	cashierPrivileges, err := s.privilegeRepo.FindByCodes(model.CashierPrivileges)
	if err != nil {
		return err
	}

	grants := map[string][]model.Privilege{
		model.RoleMasterAdmin: allPrivileges,
		model.RoleCashier:     cashierPrivileges,
	}
	for code, privileges := range grants {
		role, err := s.roleRepo.FindByCode(code)
		if err != nil {
			return fmt.Errorf("load role %s: %w", code, err)
		}
		if len(role.Privileges) > 0 {
			continue
		}
		if err := s.roleRepo.ReplacePrivileges(role, privileges); err != nil {
			return fmt.Errorf("grant role %s: %w", code, err)
		}
		slog.Info("role privileges granted", "role", code, "count", len(privileges))
	}
	return nil
}

// EnsureStaffUser creates the account when it is missing and reports created=true.
// An existing account keeps its role; its password is only replaced when resetPassword
// is set, which also logs out its open sessions.
func (s *seedService) EnsureStaffUser(email, fullName, roleCode, password string, resetPassword bool) (*model.User, bool, error) {
	existing, err := s.userRepo.FindByEmail(email)
	switch {
	case err == nil:
		if !resetPassword {
			return existing, false, nil
		}
		if err := existing.SetPassword(password); err != nil {
			return nil, false, err
		}
		if err := s.userRepo.ResetCredentials(existing.ID, existing.Password, uuid.New().String()); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, false, err
	}

	role, err := s.roleRepo.FindByCode(roleCode)
	if err != nil {
		return nil, false, fmt.Errorf("load role %s: %w", roleCode, err)
	}

	user := &model.User{
		Email:      email,
		FullName:   fullName,
		RoleID:     &role.ID,
		IsActive:   true,
		Privileges: role.Privileges,
	}
	user.CreatedBy = SystemActor.ID
	user.UpdatedBy = SystemActor.ID

	if err := user.SetPassword(password); err != nil {
		return nil, false, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, false, err
	}
	user.Role = role

	slog.Info("staff user created", "email", email, "role", roleCode)
	return user, true, nil
}
