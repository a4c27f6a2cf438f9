package master

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id int64) error

	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id int64) (position.PositionResponse, error)
	ListPositions(ctx context.Context, req position.ListPositionsRequest) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeletePosition(ctx context.Context, id int64) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	taken, err := s.departmentRepo.NameTaken(ctx, req.Name, 0)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	if taken {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if postgresql.IsUniqueViolation(err, postgresql.ConstraintDepartmentName) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(d), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	stored, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		taken, err := s.departmentRepo.NameTaken(ctx, *req.Name, req.ID)
		if err != nil {
			return department.DepartmentResponse{}, err
		}
		if taken {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
	}

	updated, err := s.departmentRepo.Update(ctx, req.Apply(stored))
	if err != nil {
		if postgresql.IsUniqueViolation(err, postgresql.ConstraintDepartmentName) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if postgresql.IsForeignKeyViolation(err, postgresql.ConstraintPositionDepartment) {
			return department.ErrDepartmentInUse
		}
		return err
	}
	return nil
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	if err := s.checkDepartment(ctx, *req.DepartmentID); err != nil {
		return position.PositionResponse{}, err
	}

	taken, err := s.positionRepo.NameTaken(ctx, *req.DepartmentID, req.Name, 0)
	if err != nil {
		return position.PositionResponse{}, err
	}
	if taken {
		return position.PositionResponse{}, position.ErrPositionNameExists
	}

	created, err := s.positionRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return position.PositionResponse{}, mapPositionWriteError(err)
	}

	return position.ToResponse(created), nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id int64) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToResponse(p), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context, req position.ListPositionsRequest) ([]position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	positions, err := s.positionRepo.List(ctx, position.Filter{DepartmentID: req.DepartmentID})
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.ToResponse(p))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	stored, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return position.PositionResponse{}, err
	}

	merged := req.Apply(stored)

	if req.DepartmentID != nil {
		if err := s.checkDepartment(ctx, merged.DepartmentID); err != nil {
			return position.PositionResponse{}, err
		}
	}

	if req.DepartmentID != nil || req.Name != nil {
		taken, err := s.positionRepo.NameTaken(ctx, merged.DepartmentID, merged.Name, merged.ID)
		if err != nil {
			return position.PositionResponse{}, err
		}
		if taken {
			return position.PositionResponse{}, position.ErrPositionNameExists
		}
	}

	updated, err := s.positionRepo.Update(ctx, merged)
	if err != nil {
		return position.PositionResponse{}, mapPositionWriteError(err)
	}

	return position.ToResponse(updated), nil
}

// DeletePosition removes the position; users holding it keep their row with position_id nulled.
func (s *masterServiceImpl) DeletePosition(ctx context.Context, id int64) error {
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		if postgresql.IsForeignKeyViolation(err, "") {
			return position.ErrPositionInUse
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) checkDepartment(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.Exists(ctx, departmentID)
	if err != nil {
		return err
	}
	if !exists {
		return validator.InvalidReference("department_id")
	}
	return nil
}

func mapPositionWriteError(err error) error {
	switch {
	case postgresql.IsUniqueViolation(err, postgresql.ConstraintPositionName):
		return position.ErrPositionNameExists
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintPositionDepartment):
		return validator.InvalidReference("department_id")
	}
	return err
}
