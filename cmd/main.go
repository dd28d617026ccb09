package main

import (
	"log"
	"os"

	"github.com/Nyuneihlaing/water-project/config"
	"github.com/Nyuneihlaing/water-project/routes"
	"github.com/Nyuneihlaing/water-project/services"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()
	services.InitUpdateBus(hub)

	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
