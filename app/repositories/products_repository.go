package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/davlatbek/go-catalog/app/errs"
	"github.com/davlatbek/go-catalog/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, image *models.ProductImage) error
	GetImage(ctx context.Context, id string) (*models.ProductImage, error)
	RemoveImage(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func imagesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Images", imagesInOrder).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images", imagesInOrder).
		Preload("Category").
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	// Save skips zero-valued fields; a full-row update must not, or clearing
	// a flag like in_stock would be lost.
	return p.db.WithContext(ctx).Model(product).Select("*").Omit("id", "created_at").Updates(product).Error
}

// Delete removes a product together with its image rows and any order links.
// Orders referencing the product survive with the link dropped.
func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete images for product %s: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM order_products WHERE product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to drop order links for product %s: %w", id, err)
		}
		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

func (p *productRepository) AddImage(ctx context.Context, image *models.ProductImage) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ProductImage{}).Where("product_id = ?", image.ProductID).Count(&count).Error; err != nil {
			return err
		}
		image.Position = int(count)
		return tx.Create(image).Error
	})
}

func (p *productRepository) GetImage(ctx context.Context, id string) (*models.ProductImage, error) {
	var image models.ProductImage
	err := p.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (p *productRepository) RemoveImage(ctx context.Context, id string) error {
	result := p.db.WithContext(ctx).Delete(&models.ProductImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
