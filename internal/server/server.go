package server

import (
	"context"
	"net/http"

	"tourgo/internal/auth"
	"tourgo/internal/booking"
	"tourgo/internal/challenge"
	"tourgo/internal/coin"
	"tourgo/internal/config"
	"tourgo/internal/discount"
	"tourgo/internal/email"
	"tourgo/internal/events"
	"tourgo/internal/food"
	"tourgo/internal/hotel"
	"tourgo/internal/room"
	"tourgo/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config, emailService *email.Service) *Server {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	userSvc := user.NewService(userRepo, cfg.JWTSecret)
	userHandler := user.NewHandler(userSvc)

	hotelSvc := hotel.NewService(hotel.NewRepository(db))
	hotelHandler := hotel.NewHandler(hotelSvc)

	roomRepo := room.NewRepository(db)
	roomHandler := room.NewHandler(roomRepo, hotelSvc)

	foodRepo := food.NewRepository(db)
	foodHandler := food.NewHandler(foodRepo, hotelSvc)

	discountSvc := discount.NewService(discount.NewRepository(db), redisClient)
	discountHandler := discount.NewHandler(discountSvc, hotelSvc)

	coinRepo := coin.NewRepository(db)
	coinHandler := coin.NewHandler(coinRepo)

	emitter := events.NewEmitter()
	eventsHandler := events.NewHandler(emitter, hotelSvc)

	bookingSvc := booking.NewService(
		booking.NewRepository(db), roomRepo, hotelSvc, discountSvc,
		coinRepo, userRepo, emailService, emitter, booking.NewRoomHold(redisClient),
	)
	bookingHandler := booking.NewHandler(bookingSvc)

	challengeHandler := challenge.NewHandler(coinRepo)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	router.GET("/hotels", hotelHandler.ListHotels)
	router.GET("/hotels/:hotelID", hotelHandler.GetHotel)
	router.GET("/hotels/:hotelID/rooms", roomHandler.ListRooms)
	router.GET("/hotels/:hotelID/food", foodHandler.ListItems)
	router.GET("/hotels/:hotelID/discounts", discountHandler.ListDiscounts)

	router.GET("/challenges", challengeHandler.ListChallenges)
	router.GET("/rewards", challengeHandler.ListRewards)
	router.GET("/leaderboard", challengeHandler.Leaderboard)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/profile", userHandler.GetProfile)
		protected.PUT("/profile", userHandler.UpdateProfile)
		protected.GET("/stats", challengeHandler.GetStats)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.POST("/quote", bookingHandler.Quote)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		protected.GET("/bookings/:bookingID/receipt", bookingHandler.DownloadReceipt)
		protected.GET("/my/events", eventsHandler.StreamMyBookings)

		protected.GET("/coins/balance", coinHandler.GetBalance)
		protected.GET("/coins/transactions", coinHandler.ListTransactions)
	}

	owner := router.Group("/owner")
	owner.Use(authMiddleware, auth.RequireRole(auth.RoleHotelOwner))
	{
		owner.POST("/hotels", hotelHandler.CreateHotel)
		owner.GET("/hotels", hotelHandler.ListOwnHotels)
		owner.PUT("/hotels/:hotelID", hotelHandler.UpdateHotel)
		owner.PUT("/hotels/:hotelID/coins", hotelHandler.SetCoinSettings)

		owner.GET("/hotels/:hotelID/rooms", roomHandler.ListOwnRooms)
		owner.POST("/hotels/:hotelID/rooms", roomHandler.CreateRoom)
		owner.PUT("/hotels/:hotelID/rooms/:roomID", roomHandler.UpdateRoom)
		owner.DELETE("/hotels/:hotelID/rooms/:roomID", roomHandler.DeleteRoom)

		owner.GET("/hotels/:hotelID/food", foodHandler.ListOwnItems)
		owner.POST("/hotels/:hotelID/food", foodHandler.CreateItem)
		owner.PUT("/hotels/:hotelID/food/:itemID", foodHandler.UpdateItem)
		owner.DELETE("/hotels/:hotelID/food/:itemID", foodHandler.DeleteItem)

		owner.GET("/hotels/:hotelID/discounts", discountHandler.ListOwnDiscounts)
		owner.POST("/hotels/:hotelID/discounts", discountHandler.CreateDiscount)
		owner.PUT("/hotels/:hotelID/discounts/:discountID", discountHandler.UpdateDiscount)
		owner.DELETE("/hotels/:hotelID/discounts/:discountID", discountHandler.DeleteDiscount)

		owner.GET("/hotels/:hotelID/bookings", bookingHandler.ListHotelBookings)
		owner.PUT("/bookings/:bookingID/status", bookingHandler.UpdateStatus)
		owner.GET("/hotels/:hotelID/events", eventsHandler.StreamHotelBookings)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
