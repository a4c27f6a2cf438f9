package user

import (
	"context"
	"fmt"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	List(ctx context.Context, req user.ListUsersRequest) ([]user.UserResponse, error)
	// Create is shared by POST /users and registration; it runs in the caller's transaction when ctx carries one.
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	Get(ctx context.Context, principal auth.Principal, id int64) (user.UserResponse, error)
	Update(ctx context.Context, principal auth.Principal, req user.UpdateUserRequest) (user.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type UserServiceImpl struct {
	tx           postgresql.Transactor
	userRepo     user.UserRepository
	positionRepo position.PositionRepository
}

func NewUserService(tx postgresql.Transactor, userRepo user.UserRepository, positionRepo position.PositionRepository) UserService {
	return &UserServiceImpl{
		tx:           tx,
		userRepo:     userRepo,
		positionRepo: positionRepo,
	}
}

// HashPassword hashes a plain password with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// List implements UserService.
func (s *UserServiceImpl) List(ctx context.Context, req user.ListUsersRequest) ([]user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Create implements UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	positionID := req.PositionID
	if req.Role != user.RoleEmployee {
		positionID = nil
	}
	if err := s.checkPosition(ctx, positionID); err != nil {
		return user.UserResponse{}, err
	}

	taken, err := s.userRepo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return user.UserResponse{}, err
	}
	if taken {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       status,
		ImageURL:     req.ImageURL,
		PositionID:   positionID,
	})
	if err != nil {
		return user.UserResponse{}, mapWriteError(err)
	}

	return user.ToResponse(created), nil
}

// Get implements UserService. Employees may only read their own profile.
func (s *UserServiceImpl) Get(ctx context.Context, principal auth.Principal, id int64) (user.UserResponse, error) {
	if !principal.Can(user.PermissionUserViewAll) && !principal.IsSelf(id) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// Update implements UserService. Callers without user.manage may only edit their own
// name, email, password and image.
func (s *UserServiceImpl) Update(ctx context.Context, principal auth.Principal, req user.UpdateUserRequest) (user.UserResponse, error) {
	if !principal.Can(user.PermissionUserManage) {
		if !principal.IsSelf(req.ID) {
			return user.UserResponse{}, user.ErrInsufficientPermissions
		}
		if req.TouchesProtectedFields() {
			return user.UserResponse{}, user.ErrProtectedFieldsOnSelf
		}
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	stored, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	merged, err := req.Apply(stored)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.PositionID != nil && merged.PositionID != nil {
		if err := s.checkPosition(ctx, merged.PositionID); err != nil {
			return user.UserResponse{}, err
		}
	}

	if req.Email != nil {
		taken, err := s.userRepo.EmailTaken(ctx, merged.Email, merged.ID)
		if err != nil {
			return user.UserResponse{}, err
		}
		if taken {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
	}

	var passwordHash string
	if req.Password != nil {
		if passwordHash, err = HashPassword(*req.Password); err != nil {
			return user.UserResponse{}, err
		}
	}

	var updated user.User
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.userRepo.Update(txCtx, merged)
		if err != nil {
			return err
		}
		if passwordHash != "" {
			return s.userRepo.UpdatePassword(txCtx, merged.ID, passwordHash)
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, mapWriteError(err)
	}

	return user.ToResponse(updated), nil
}

// Delete implements UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if postgresql.IsForeignKeyViolation(err, "") {
			return user.ErrUserInUse
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) checkPosition(ctx context.Context, positionID *int64) error {
	if positionID == nil {
		return nil
	}
	exists, err := s.positionRepo.Exists(ctx, *positionID)
	if err != nil {
		return err
	}
	if !exists {
		return validator.InvalidReference("position_id")
	}
	return nil
}

// mapWriteError turns constraint violations lost to a race into domain errors.
func mapWriteError(err error) error {
	switch {
	case postgresql.IsUniqueViolation(err, postgresql.ConstraintUserEmail):
		return user.ErrUserEmailExists
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintUserPosition):
		return validator.InvalidReference("position_id")
	}
	return err
}
