package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tricyvic/alx-travel-app-0x00/controllers"
	_ "github.com/tricyvic/alx-travel-app-0x00/docs"
	"github.com/tricyvic/alx-travel-app-0x00/services"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

// Deps là những gì router cần để dựng các service
type Deps struct {
	DB         *gorm.DB
	Logger     logger.Logger
	BcryptCost int
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	opts := services.Options{DB: deps.DB, Logger: deps.Logger}

	userService := services.NewUserService(opts, deps.BcryptCost)
	listingService := services.NewListingService(opts)
	bookingService := services.NewBookingService(opts)
	reviewService := services.NewReviewService(opts)

	userController := controllers.NewUserController(userService)
	listingController := controllers.NewListingController(listingService, reviewService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	v1.GET("/users", userController.GetUsers)
	v1.POST("/users", userController.CreateUser)
	v1.GET("/users/:id", userController.GetUserByID)
	v1.PUT("/users/:id", userController.UpdateUser)
	v1.PATCH("/users/:id", userController.PatchUser)
	v1.DELETE("/users/:id", userController.DeleteUser)

	v1.GET("/listings", listingController.GetListings)
	v1.POST("/listings", listingController.CreateListing)
	v1.GET("/listings/:id", listingController.GetListingDetail)
	v1.PUT("/listings/:id", listingController.UpdateListing)
	v1.PATCH("/listings/:id", listingController.PatchListing)
	v1.DELETE("/listings/:id", listingController.DeleteListing)
	v1.GET("/listings/:id/reviews", listingController.GetListingReviews)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", bookingController.UpdateBooking)
	v1.PATCH("/bookings/:id", bookingController.PatchBooking)
	v1.DELETE("/bookings/:id", bookingController.DeleteBooking)

	v1.GET("/reviews", reviewController.GetReviews)
	v1.POST("/reviews", reviewController.CreateReview)
	v1.GET("/reviews/:id", reviewController.GetReviewDetail)
	v1.PUT("/reviews/:id", reviewController.UpdateReview)
	v1.PATCH("/reviews/:id", reviewController.PatchReview)
	v1.DELETE("/reviews/:id", reviewController.DeleteReview)
}
