package main

import (
	_ "github.com/eleven-am/streetscene/docs"
	"github.com/eleven-am/streetscene/internal/bootstrap"
	"github.com/joho/godotenv"
)

// @title Streetscene API
// @version 1.0.0
// @description Street View scene descriptions for SUMO vehicle trajectories

// @BasePath /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	bootstrap.Run()
}
