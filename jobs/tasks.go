package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/atlas-backoffice/atlas-backoffice/internal/categories"
	jobmetrics "github.com/atlas-backoffice/atlas-backoffice/internal/jobs"
	"github.com/atlas-backoffice/atlas-backoffice/internal/products"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCategoryRecount refreshes the denormalized product count of
	// categories. A zero category id means recount every category.
	TaskCategoryRecount = "category:recount"
)

// CategoryRecountPayload selects the categories to recount.
type CategoryRecountPayload struct {
	CategoryID int64 `json:"categoryId"`
}

// NewCategoryRecountTask constructs a recount task for one category, or for
// all categories when id is zero.
func NewCategoryRecountTask(categoryID int64) (*asynq.Task, error) {
	data, err := json.Marshal(CategoryRecountPayload{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCategoryRecount, data), nil
}

// Recounter reconciles category product counts against the product table.
// The REST surface lets callers set the count directly, so a periodic
// recount keeps the denormalized value honest.
type Recounter struct {
	categories *categories.Service
	products   products.Repository
	metrics    *jobmetrics.Metrics
	logger     *slog.Logger
}

// NewRecounter constructs a Recounter instance. A nil metrics disables
// instrumentation.
func NewRecounter(categorySvc *categories.Service, productRepo products.Repository, metrics *jobmetrics.Metrics, logger *slog.Logger) *Recounter {
	return &Recounter{categories: categorySvc, products: productRepo, metrics: metrics, logger: logger}
}

// HandleCategoryRecount processes TaskCategoryRecount tasks.
func (rc *Recounter) HandleCategoryRecount(ctx context.Context, t *asynq.Task) error {
	var payload CategoryRecountPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	tracker := rc.metrics.Track("category_recount")
	if payload.CategoryID != 0 {
		return tracker.End(rc.recount(ctx, payload.CategoryID))
	}
	list, err := rc.categories.List(ctx, categories.Filter{})
	if err != nil {
		return tracker.End(fmt.Errorf("list categories: %w", err))
	}
	for _, c := range list {
		if err := rc.recount(ctx, c.ID); err != nil {
			return tracker.End(err)
		}
	}
	return tracker.End(nil)
}

func (rc *Recounter) recount(ctx context.Context, categoryID int64) error {
	count, err := rc.products.CountByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("count products for category %d: %w", categoryID, err)
	}
	_, err = rc.categories.UpdateProductCount(ctx, categoryID, int32(count))
	if errors.Is(err, shared.ErrNotFound) {
		// The category was deleted between enqueue and run.
		rc.logger.Warn("recount skipped missing category", "categoryId", categoryID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("update product count for category %d: %w", categoryID, err)
	}
	rc.logger.Info("category product count refreshed", "categoryId", categoryID, "productCount", count)
	return nil
}
