package api

import (
	"log"
	stdhttp "net/http"

	intconfig "sleeperbooking/internal/config"
	h "sleeperbooking/internal/http/handlers"
	"sleeperbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, api *h.API) *gin.Engine {
	h.RegisterValidations()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/", api.Home)

	grp := r.Group("/api")
	{
		grp.GET("/health", api.Health)
		grp.GET("/stations", api.GetStations)
		grp.GET("/seats", api.GetSeats)
		grp.GET("/meals", api.GetMeals)
		grp.GET("/availability", api.CheckAvailability)

		grp.POST("/book", api.CreateBooking)
		grp.GET("/bookings", api.GetBookings)
		grp.GET("/booking/:id", api.GetBooking)
		grp.GET("/booking/:id/ticket", api.GetBookingTicket)
		grp.DELETE("/cancel/:id", api.CancelBooking)

		grp.POST("/predict", api.Predict)
	}

	return r
}
