package routes

import (
	"net/http"

	"github.com/davlatbek/go-catalog/app/configs"
	"github.com/davlatbek/go-catalog/app/handlers"
	"github.com/davlatbek/go-catalog/app/handlers/admin"
	"github.com/davlatbek/go-catalog/app/middlewares"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/davlatbek/go-catalog/app/utils/renderer"
	"github.com/davlatbek/go-catalog/app/utils/sessions"
	"github.com/davlatbek/go-catalog/app/utils/storage"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) (*mux.Router, error) {
	keys, err := configs.SessionKeysFromEnv(env)
	if err != nil {
		return nil, err
	}

	rnd := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	disk := storage.NewDisk(env.MediaRoot)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	productHandler := handlers.NewProductHandler(productRepo, rnd, env.MediaURL)
	orderHandler := handlers.NewOrderHandler(orderRepo, validate, rnd)
	authHandler := handlers.NewAuthHandler(userRepo, sessionStore, validate, rnd)
	adminHandler := admin.NewAdminHandler(rnd, validate, productRepo, categoryRepo, orderRepo, userRepo, disk, env.MediaURL)

	router := mux.NewRouter()
	router.Use(middlewares.AuthContextMiddleware(sessionStore, userRepo))

	// Public read/write API.
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/product/{id}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/order", orderHandler.CreateOrder).Methods("POST")

	// Session endpoints sit outside the staff gate.
	router.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/admin/logout", authHandler.Logout).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.RequireStaff())
	if env.AppEnv == "production" {
		adminRouter.Use(csrf.Protect(keys.AuthKey, csrf.Secure(true)))
	}

	adminRouter.HandleFunc("", adminHandler.Index).Methods("GET")

	adminRouter.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.GetCategory).Methods("GET")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")

	adminRouter.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandler.GetProduct).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")
	adminRouter.HandleFunc("/products/{id}/images", adminHandler.UploadProductImage).Methods("POST")
	adminRouter.HandleFunc("/images/{id}", adminHandler.DeleteProductImage).Methods("DELETE")

	adminRouter.HandleFunc("/orders", adminHandler.ListOrders).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", adminHandler.GetOrder).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", adminHandler.UpdateOrder).Methods("PUT")
	adminRouter.HandleFunc("/orders/{id}/status", adminHandler.PatchOrderStatus).Methods("PATCH")

	usersRouter := adminRouter.PathPrefix("/users").Subrouter()
	usersRouter.Use(middlewares.RequireSuperuser())
	usersRouter.HandleFunc("", adminHandler.ListUsers).Methods("GET")
	usersRouter.HandleFunc("", adminHandler.CreateUser).Methods("POST")
	usersRouter.HandleFunc("/{id}", adminHandler.GetUser).Methods("GET")
	usersRouter.HandleFunc("/{id}", adminHandler.UpdateUser).Methods("PUT")
	usersRouter.HandleFunc("/{id}", adminHandler.DeleteUser).Methods("DELETE")

	// Stored image files.
	router.PathPrefix(env.MediaURL).Handler(
		http.StripPrefix(env.MediaURL, http.FileServer(http.Dir(env.MediaRoot))),
	).Methods("GET")

	return router, nil
}
