package main

import (
	"log"

	"cinemabackend/config"
	"cinemabackend/internal/handler"
	"cinemabackend/internal/middleware"
	"cinemabackend/internal/repository"
	"cinemabackend/internal/service"
	"cinemabackend/pkg/database"
	"cinemabackend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: services skip publishing when no broker is around.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, event publishing disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Repositories
	movieRepo := repository.NewMovieRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	showtimeRepo := repository.NewShowtimeRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	comboRepo := repository.NewComboItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Guard + services
	guard := service.NewIntegrityGuard(showtimeRepo, ticketRepo, orderRepo)
	movieSvc := service.NewMovieService(movieRepo, guard)
	roomSvc := service.NewRoomService(roomRepo, guard)
	showtimeSvc := service.NewShowtimeService(showtimeRepo, movieRepo, roomRepo, ticketRepo, guard, publisher)
	ticketSvc := service.NewTicketService(ticketRepo, showtimeRepo)
	comboSvc := service.NewComboItemService(comboRepo, guard)
	orderSvc := service.NewOrderService(orderRepo, ticketRepo, comboRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "cinema-backend"})
	})

	api := e.Group("/api/v1")
	handler.NewMovieHandler(movieSvc).RegisterRoutes(api.Group("/movies"))
	handler.NewRoomHandler(roomSvc).RegisterRoutes(api.Group("/rooms"))
	handler.NewShowtimeHandler(showtimeSvc).RegisterRoutes(api.Group("/showtimes"))
	handler.NewTicketHandler(ticketSvc).RegisterRoutes(api.Group("/tickets"))
	handler.NewComboItemHandler(comboSvc).RegisterRoutes(api.Group("/combos"))
	handler.NewOrderHandler(orderSvc).RegisterRoutes(api.Group("/orders"))

	log.Printf("Cinema backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
