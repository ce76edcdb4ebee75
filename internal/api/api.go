package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/DrRobsonAmuiJr/ROE/internal/api/controller"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/logger"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
	"github.com/DrRobsonAmuiJr/ROE/internal/service/entries"
	"github.com/DrRobsonAmuiJr/ROE/internal/service/partners"
	"github.com/DrRobsonAmuiJr/ROE/internal/service/reports"
)

type APIService struct {
	router *echo.Echo

	reportsService  *reports.Service
	entriesService  *entries.Service
	partnersService *partners.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(requestLogger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.reportsService = reports.NewReportsService(store)
	svc.entriesService = entries.NewEntriesService(store)
	svc.partnersService = partners.NewPartnersService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.reportsService, svc.entriesService, svc.partnersService)

	reportsGroup := api.Group("/reports")
	reportsGroup.GET("/dashboard", cntrl.GetDashboard)
	reportsGroup.GET("/years", cntrl.GetYears)
	reportsGroup.GET("/comparison", cntrl.GetComparisonGrid)
	reportsGroup.GET("/period", cntrl.GetPeriodComparison)
	reportsGroup.GET("/summary", cntrl.GetSummary)
	reportsGroup.GET("/financials", cntrl.GetFinancialPanel)
	reportsGroup.GET("/reminder", cntrl.GetReminder)

	partnersGroup := api.Group("/partners")
	partnersGroup.GET("/report", cntrl.GetPartnerReport)
	partnersGroup.GET("/dentists", cntrl.GetDentists)
	partnersGroup.GET("/dentists/:name", cntrl.GetDentistReport)
	partnersGroup.GET("/periods", cntrl.GetPeriods)
	partnersGroup.POST("/upload", cntrl.UploadPartnerBatch)
	partnersGroup.GET("/uploads", cntrl.GetUploads)
	partnersGroup.PUT("/decline-reason", cntrl.PutDeclineReason)

	entriesGroup := api.Group("/entries")
	entriesGroup.PUT("/daily", cntrl.PutDailyEntry)
	entriesGroup.DELETE("/daily/:date", cntrl.DeleteDailyEntry)
	entriesGroup.PUT("/financials/monthly/:year/:month", cntrl.PutMonthlyFinancials)
	entriesGroup.DELETE("/financials/monthly/:year/:month", cntrl.DeleteMonthlyFinancials)
	entriesGroup.PUT("/financials/annual/:year", cntrl.PutAnnualFinancials)
	entriesGroup.DELETE("/financials/annual/:year", cntrl.DeleteAnnualFinancials)

	prospectionsGroup := api.Group("/prospections")
	prospectionsGroup.GET("/list", cntrl.GetProspections)
	prospectionsGroup.POST("/create", cntrl.CreateProspection)
	prospectionsGroup.DELETE("/:id", cntrl.DeleteProspection)

	return svc, nil
}
