package dashboard

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard/dto"
)

type UseCase interface {
	Overview(ctx context.Context, filters *dto.Filters) (*dto.Overview, error)
}
