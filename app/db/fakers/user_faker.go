package fakers

import (
	"github.com/davlatbek/go-catalog/app/helpers"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

func UserFaker(role string) *models.User {
	return &models.User{
		ID:       uuid.New().String(),
		Email:    faker.Email(),
		Password: helpers.HashPassword("password123"),
		Role:     role,
	}
}
