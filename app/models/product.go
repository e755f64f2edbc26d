package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title         string         `gorm:"size:255;not null"`
	Description   string         `gorm:"type:text"`
	Price         int            `gorm:"not null"`
	OriginalPrice int            `gorm:"not null"`
	CategoryID    *string        `gorm:"size:36;index"`
	Category      *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Brand         string         `gorm:"size:100"`
	Rating        float64        `gorm:"default:0"`
	InStock       bool           `gorm:"default:true"`
	StockCount    int            `gorm:"not null;default:0"`
	Tags          StringList     `gorm:"type:text"`
	Features      StringList     `gorm:"type:text"`
	ReturnPolicy  string         `gorm:"size:255"`
	Warranty      string         `gorm:"size:255"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// FirstImage returns the representative thumbnail image, or nil when the
// product has no attached images. Images are expected to be preloaded in
// position order.
func (p *Product) FirstImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}
