package review

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
)

type ReviewService interface {
	List(ctx context.Context, principal auth.Principal, req ListReviewsRequest) ([]ReviewResponse, error)
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Get(ctx context.Context, principal auth.Principal, id int64) (ReviewResponse, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
}
