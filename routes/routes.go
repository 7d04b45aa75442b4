package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parkpalace-backend/controllers"
	"parkpalace-backend/middleware"
	"parkpalace-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the public and admin route groups.
func SetupRouter(
	rc *controllers.RoomController,
	mc *controllers.MenuController,
	bc *controllers.BookingController,
	ac *controllers.AuthController,
	uc *controllers.UserController,
	auth *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// /featured must be registered before /:id
			rooms.GET("/featured", rc.GetFeaturedRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}

		menu := api.Group("/menu")
		{
			menu.GET("", mc.GetMenu)
			menu.GET("/category/:category", mc.GetMenuByCategory)
		}

		api.GET("/hotel", controllers.GetHotelInfo)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
		}

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", ac.Login)
			authRoutes.POST("/logout", ac.Logout)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(auth))
		{
			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.PATCH("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.POST("/menu", mc.CreateMenuItem)
			admin.PUT("/menu/:id", mc.UpdateMenuItem)
			admin.PATCH("/menu/:id", mc.UpdateMenuItem)
			admin.DELETE("/menu/:id", mc.DeleteMenuItem)

			admin.GET("/bookings", bc.GetBookings)
			admin.PATCH("/bookings/:id", bc.UpdateBookingPayment)
			admin.DELETE("/bookings/:id", bc.DeleteBooking)

			admin.GET("/users", uc.GetUsers)
			admin.POST("/users", uc.CreateUser)
			admin.DELETE("/users/:id", uc.DeleteUser)
		}
	}

	return r
}
