package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduling-simulator/api"
	"os-scheduling-simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	log.Printf("loaded config: %+v", *cfg)

	app := fiber.New()
	api.Register(app, api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
