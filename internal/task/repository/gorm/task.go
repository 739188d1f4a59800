package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/task/repository"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates the gorm-backed task repository.
func New(db *gorm.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

func (r *implRepository) GetByID(ctx context.Context, id uint) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userID uint, opt repository.ListOptions) ([]model.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID)

	if opt.Search != "" {
		like := "%" + strings.ToLower(opt.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderExpr(opt.Ordering))
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit).Offset(opt.Offset)
	}

	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *implRepository) Create(ctx context.Context, t *model.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		r.l.Errorf(ctx, "task repository: failed to create task: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Update(ctx context.Context, t *model.Task) error {
	// Select the mutable columns so an emptied description is persisted too.
	return r.db.WithContext(ctx).Model(t).
		Select("title", "description").
		Updates(map[string]any{"title": t.Title, "description": t.Description}).Error
}

func (r *implRepository) Delete(ctx context.Context, t model.Task) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, t.ID).Error
}

// orderExpr maps a whitelisted ordering parameter to a SQL order expression.
// Unknown fields fall back to newest-first.
func orderExpr(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	switch field {
	case "title":
		if desc {
			return "title DESC"
		}
		return "title ASC"
	case "created_at":
		if desc {
			return "created_at DESC"
		}
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}
