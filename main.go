package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/davlatbek/go-catalog/app/cmd"
	"github.com/davlatbek/go-catalog/app/configs"
	"github.com/davlatbek/go-catalog/app/middlewares"
	"github.com/davlatbek/go-catalog/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	rand.Seed(time.Now().UnixNano())

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router, err := routes.NewRouter(db, env)
	if err != nil {
		log.Fatal("Router setup failed:", err)
	}

	// Runs before route matching so _method overrides reach PUT/DELETE routes.
	server := http.Server{
		Addr:    env.Port,
		Handler: middlewares.MethodOverrideMiddleware(router),
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
