package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/spvm/records-api/api/swagger"
	"github.com/spvm/records-api/internal/middleware"
	"github.com/spvm/records-api/internal/service"
	"github.com/spvm/records-api/pkg/config"
)

// Handlers bundles every endpoint handler for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Officer   *OfficerHandler
	Rank      *RankHandler
	PenalCode *PenalCodeHandler
	Report    *ReportHandler
	Complaint *ComplaintHandler
	Sanction  *SanctionHandler
	Warrant   *WarrantHandler
}

// RegisterRoutes wires the API surface onto the engine. Login and
// complaint submission are public; everything else under /api requires
// a valid token, with admin-only groups guarded by RequireAdmin.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers, authSvc *service.AuthService, metricsSvc *service.MetricsService) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	api := r.Group("/api")

	api.POST("/login", h.Auth.Login)
	api.POST("/complaints", h.Complaint.Create)

	auth := api.Group("")
	auth.Use(middleware.JWT(authSvc))

	admin := auth.Group("")
	admin.Use(middleware.RequireAdmin())

	auth.GET("/members", h.Officer.List)
	admin.POST("/members", h.Officer.Create)
	admin.PUT("/members/:id", h.Officer.Update)
	admin.DELETE("/members/:id", h.Officer.Delete)
	auth.PUT("/users/duty_status", h.Officer.SetDutyStatus)

	auth.GET("/ranks", h.Rank.List)
	admin.POST("/ranks", h.Rank.Create)
	admin.PUT("/ranks/:id", h.Rank.Update)
	admin.DELETE("/ranks/:id", h.Rank.Delete)

	auth.GET("/penal_code", h.PenalCode.List)
	admin.POST("/penal_code", h.PenalCode.Create)
	admin.PUT("/penal_code/:id", h.PenalCode.Update)
	admin.DELETE("/penal_code/:id", h.PenalCode.Delete)

	auth.GET("/warrants", h.Warrant.List)
	auth.POST("/warrants", h.Warrant.Create)
	auth.PUT("/warrants/:id", h.Warrant.Transition)

	auth.GET("/arrests", h.Report.ListArrests)
	auth.POST("/arrests", h.Report.CreateArrest)
	auth.GET("/arrests/export", h.Report.ExportArrests)
	auth.GET("/fines", h.Report.ListFines)
	auth.POST("/fines", h.Report.CreateFine)
	auth.GET("/fines/export", h.Report.ExportFines)

	auth.GET("/complaints", h.Complaint.List)
	admin.PUT("/complaints/:id", h.Complaint.Resolve)

	auth.GET("/sanctions", h.Sanction.List)
	admin.POST("/sanctions", h.Sanction.Create)
}
