package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oyelaran/studentbase/internal/app/controllers"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/middleware"
	"github.com/oyelaran/studentbase/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	jwtService *auth.JWTService,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.RefreshToken)
		authGroup.POST("/logout", authController.Logout)
	}

	// --- Public student lookups ---
	students := v1.Group("/students")
	{
		students.GET("", studentController.List)
		students.GET("/matric/:matricNumber", studentController.GetByMatricNumber)
		students.GET("/username/:username", studentController.GetByUsername)
	}

	// --- Authenticated student routes ---
	studentsProtected := students.Group("")
	studentsProtected.Use(middleware.JWTAuth(jwtService))
	{
		studentsProtected.GET("/me", studentController.GetProfile)
		studentsProtected.PUT("/me", studentController.UpdateProfile)
		studentsProtected.POST("/username/:username/matric", studentController.AssignMatricNumber)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
