package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	database "github.com/YEHIA060606/backend-ecommerce/config"
	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	middleware "github.com/YEHIA060606/backend-ecommerce/middlewares"
	"github.com/YEHIA060606/backend-ecommerce/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI is not set in the environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(connectCtx, uri)
	cancelConnect()
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	log.Println("Connected to MongoDB")

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.EnsureIndexes(indexCtx, client)
	cancelIndexes()
	if err != nil {
		log.Fatalf("Index creation failed: %v", err)
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	routes.HealthRoutes(router)
	routes.UserRoutes(router, controller.NewUserController(client))
	routes.ProductRoutes(router, controller.NewProductController(client))
	routes.OrderRoutes(router, controller.NewOrderController(client))
	routes.InvoiceRoutes(router, controller.NewInvoiceController(client))
	routes.ReviewRoutes(router, controller.NewReviewController(client))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}
	log.Println("Server stopped")
}
