package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation"
	allocationrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation/repository"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/auth"
	authrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/auth/repository"
	authservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/auth/service"
	clientrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/client/repository"
	clientservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/client/service"
	driverrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver/repository"
	driverservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver/service"
	fleetrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet/repository"
	fleetservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet/service"
	api "github.com/DoSomethingGreat07/Online-taxi-rental-service/handler"
	managerrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/manager/repository"
	managerservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/manager/service"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/middleware"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/realtime"
	rentalrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental/repository"
	rentalservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental/service"
	reviewrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/review/repository"
	reviewservice "github.com/DoSomethingGreat07/Online-taxi-rental-service/review/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	db := setupDatabase()

	hub := realtime.NewHub()

	fleetSvc := fleetservice.NewFleetService(fleetrepo.NewGormFleetRepo(db))
	driverSvc := driverservice.NewDriverService(driverrepo.NewGormDriverRepo(db), fleetrepo.NewGormFleetRepo(db))
	rentalSvc := rentalservice.NewRentalService(rentalrepo.NewGormRentalRepo(db))
	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), hub)
	reviewSvc := reviewservice.NewReviewService(reviewrepo.NewGormReviewRepo(db))
	clientSvc := clientservice.NewClientService(clientrepo.NewGormClientRepo(db))
	managerSvc := managerservice.NewManagerService(managerrepo.NewGormManagerRepo(db))
	authSvc := authservice.NewAuthService(authrepo.NewGormAuthRepo(db))

	authHandler := api.NewAuthHandler(authSvc)
	managerHandler := api.NewManagerHandler(managerSvc, fleetSvc)
	driverHandler := api.NewDriverHandler(driverSvc, fleetSvc, hub)
	clientHandler := api.NewClientHandler(clientSvc)
	rentalHandler := api.NewRentalHandler(rentalSvc, engine)
	reviewHandler := api.NewReviewHandler(reviewSvc)
	wsHandler := api.NewWSHandler(hub)

	r := gin.Default()

	v1 := r.Group("/api/v1")

	v1.POST("/managers/register", managerHandler.Register())
	v1.POST("/drivers/register", driverHandler.Register())
	v1.POST("/clients/register", clientHandler.Register())

	v1.POST("/auth/manager/login", authHandler.ManagerLogin())
	v1.POST("/auth/driver/login", authHandler.DriverLogin())
	v1.POST("/auth/client/login", authHandler.ClientLogin())

	v1.GET("/models", driverHandler.ListModels())
	v1.GET("/models/available", rentalHandler.AvailableModels())
	v1.GET("/drivers/:name/reviews", reviewHandler.DriverReviews())

	managers := v1.Group("/manager", middleware.RequireAuth(), middleware.RequireRoles(auth.RoleManager))
	{
		managers.POST("/vehicles", managerHandler.InsertVehicle())
		managers.DELETE("/vehicles", managerHandler.RemoveVehicle())
		managers.POST("/models", managerHandler.InsertModel())
		managers.DELETE("/vehicles/:vehicle_id/models/:model_id", managerHandler.RemoveModel())
		managers.DELETE("/drivers/:name", driverHandler.Remove())
		managers.GET("/reports/top-clients", managerHandler.TopClients())
		managers.GET("/reports/model-rents", managerHandler.ModelRentCounts())
		managers.GET("/reports/driver-stats", managerHandler.DriverStats())
		managers.GET("/reports/clients-by-city", managerHandler.ClientsByCity())
	}

	drivers := v1.Group("/driver", middleware.RequireAuth(), middleware.RequireRoles(auth.RoleDriver))
	{
		drivers.PUT("/address", driverHandler.UpdateAddress())
		drivers.POST("/capabilities", driverHandler.DeclareCapability())
		drivers.GET("/ws", wsHandler.DriverSocket())
	}

	clients := v1.Group("/client", middleware.RequireAuth(), middleware.RequireRoles(auth.RoleClient))
	{
		clients.POST("/rents", rentalHandler.BookRent())
		clients.GET("/rents", rentalHandler.MyRents())
		clients.POST("/reviews", reviewHandler.LeaveReview())
		clients.GET("/ws", wsHandler.ClientSocket())
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
