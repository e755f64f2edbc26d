package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	AppEnv     string
	AppAuthKey string
	AppEncKey  string
	MediaRoot  string
	MediaURL   string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		MediaRoot:  os.Getenv("MEDIA_ROOT"),
		MediaURL:   os.Getenv("MEDIA_URL"),
	}

	if env.Port == "" {
		env.Port = ":8080"
	}
	if env.MediaRoot == "" {
		env.MediaRoot = "media"
	}
	if env.MediaURL == "" {
		env.MediaURL = "/media/"
	}

	return env
}

var LoadENV = LoadEnv()
