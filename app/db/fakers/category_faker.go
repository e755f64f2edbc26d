package fakers

import (
	"fmt"

	"github.com/davlatbek/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

func CategoryFaker() *models.Category {
	return &models.Category{
		ID:   uuid.New().String(),
		Name: fmt.Sprintf("%s %s", faker.Word(), uuid.NewString()[:4]),
	}
}
