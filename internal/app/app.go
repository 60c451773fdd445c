package app

import (
	"employee-api/internal/employee"
	"employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires store -> service -> handler and registers every route on
// the engine. The store lives for the process lifetime; nothing survives a
// restart.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	employeeRepo := employee.NewRepository()

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}

	return nil
}
