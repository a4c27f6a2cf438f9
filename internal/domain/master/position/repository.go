package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, position Position) (Position, error)
	GetByID(ctx context.Context, id int64) (Position, error)
	List(ctx context.Context, filter Filter) ([]Position, error)
	Update(ctx context.Context, position Position) (Position, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, departmentID int64, name string, exceptID int64) (bool, error)
}
