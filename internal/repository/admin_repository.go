package repository

import (
	"catalogo/internal/domain/model"
	"context"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (model.Admin, error)
}
