package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name          string
		price         int
		originalPrice int
		want          int
	}{
		{"twenty percent off", 80, 100, 20},
		{"price above original", 100, 80, 0},
		{"equal prices", 100, 100, 0},
		{"zero original price", 50, 0, 0},
		{"free product", 0, 100, 100},
		{"rounds up", 66, 100, 34},
		{"rounds down", 667, 1000, 33},
		{"third off", 200, 300, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.price, tt.originalPrice))
		})
	}
}

func TestDiscountPercentStaysInRange(t *testing.T) {
	for price := 0; price <= 120; price += 10 {
		for original := 0; original <= 120; original += 10 {
			got := DiscountPercent(price, original)
			assert.GreaterOrEqual(t, got, 0, "price=%d original=%d", price, original)
			assert.LessOrEqual(t, got, 100, "price=%d original=%d", price, original)
			if original <= price {
				assert.Zero(t, got, "price=%d original=%d", price, original)
			}
		}
	}
}
