package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/dpak1999/cognitionis-server/app/routes"
	"github.com/dpak1999/cognitionis-server/pkg/initialization"
	"github.com/dpak1999/cognitionis-server/pkg/middleware"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
)

func main() {
	r := gin.New()

	// Init all dependencies
	initialization.Init()

	utils.PrintAppBanner()

	r.Use(middleware.CustomLogger())
	r.Use(gin.Recovery())

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(corsOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-CSRF-Token"},
		AllowCredentials: true,
	}))

	// Every mutating route requires a CSRF token
	r.Use(middleware.VerifyCSRF())

	routes.AuthRoute(r)
	routes.InstructorRoute(r)
	routes.CourseRoute(r)
	routes.EnrollmentRoute(r)

	if err := r.Run(); err != nil {
		fmt.Printf("Server failed to start: %v\n", err)
	}
}
