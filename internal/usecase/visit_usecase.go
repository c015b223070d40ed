package usecase

import (
	"context"
	"net/http"
	"strings"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"go.uber.org/zap"
)

// VisitUsecase はページ閲覧の記録。同じ訪問者×ページは1日1回だけ。
// 記録失敗で画面を壊さない（ログだけ残して成功扱い）。
type VisitUsecase struct {
	visitRepo repo.VisitRepository
	clock     Clock
	logger    *zap.Logger
}

func NewVisitUsecase(visitRepo repo.VisitRepository, clock Clock, logger *zap.Logger) *VisitUsecase {
	return &VisitUsecase{
		visitRepo: visitRepo,
		clock:     clock,
		logger:    logger,
	}
}

type TrackVisitInput struct {
	VisitorID string
	Page      string
	UserAgent string
}

func (u *VisitUsecase) TrackVisit(ctx context.Context, catalogID int64, in TrackVisitInput) error {
	page := strings.TrimSpace(in.Page)
	if page == "" {
		page = "home"
	}
	if in.VisitorID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid visitor")
	}

	day := u.clock.Now().Format("2006-01-02")

	exists, err := u.visitRepo.ExistsForDay(ctx, catalogID, in.VisitorID, page, day)
	if err != nil {
		u.logger.Warn("visit lookup failed", zap.Error(err))
		return nil
	}
	if exists {
		return nil
	}

	err = u.visitRepo.Create(ctx, model.SiteVisit{
		CatalogID: catalogID,
		VisitorID: in.VisitorID,
		Page:      page,
		UserAgent: in.UserAgent,
		VisitedOn: day,
	})
	if err != nil {
		u.logger.Warn("visit insert failed", zap.Error(err))
	}
	return nil
}

// ページ別の訪問数（admin）
func (u *VisitUsecase) Summary(ctx context.Context, catalogID int64) ([]repo.VisitSummary, error) {
	rows, err := u.visitRepo.SummaryByPage(ctx, catalogID)
	if err != nil {
		return []repo.VisitSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}
