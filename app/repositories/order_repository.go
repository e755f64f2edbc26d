package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/models"
	"gorm.io/gorm"
)

// OrderFilter narrows admin order listings. Zero values mean "no filter".
type OrderFilter struct {
	Status      string
	Region      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// OrderUpdate is the full-record edit surface of an order. The creation
// timestamp is deliberately absent; it is immutable.
type OrderUpdate struct {
	FullName     string
	PhoneNumber  string
	Region       string
	Status       string
	InternalNote string
	ProductIDs   []string
}

type OrderRepositoryImpl interface {
	Create(ctx context.Context, order *models.Order, productIDs []string) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &gormOrderRepository{db: db}
}

// resolveProducts loads the referenced products and fails with a field-level
// validation error naming every id that does not exist.
func resolveProducts(tx *gorm.DB, productIDs []string) ([]models.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}

	if len(products) != len(productIDs) {
		found := make(map[string]bool, len(products))
		for _, p := range products {
			found[p.ID] = true
		}
		verr := &errs.ValidationError{Fields: map[string]string{}}
		for _, id := range productIDs {
			if !found[id] {
				verr.Fields["products"] = fmt.Sprintf("invalid product reference: %s", id)
				break
			}
		}
		return nil, verr
	}

	return products, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *models.Order, productIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products, err := resolveProducts(tx, productIDs)
		if err != nil {
			return err
		}
		order.Products = products
		// created_at is assigned here, never taken from the caller.
		order.CreatedAt = time.Time{}
		return tx.Create(order).Error
	})
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Products.Images", imagesInOrder).
		Preload("Products").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Products.Images", imagesInOrder).
		Preload("Products").
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) Update(ctx context.Context, id string, upd OrderUpdate) (*models.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		products, err := resolveProducts(tx, upd.ProductIDs)
		if err != nil {
			return err
		}

		columns := map[string]interface{}{
			"full_name":     upd.FullName,
			"phone_number":  upd.PhoneNumber,
			"region":        upd.Region,
			"status":        upd.Status,
			"internal_note": upd.InternalNote,
		}
		if err := tx.Model(&order).Updates(columns).Error; err != nil {
			return err
		}

		return tx.Model(&order).Association("Products").Replace(products)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows for a no-op update too, so
		// distinguish an unknown id from an unchanged status.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrNotFound
		}
	}
	return nil
}
