package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/payment"
	"backend/internal/validate"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("⚠️ user index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("⚠️ product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}

	gateway := payment.NewStripeGateway(config.AppEnv.StripeSecretKey)
	authRequired := middleware.Authenticate(config.AppEnv.JWTSecret)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.TokenHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<h2>Welcome to Online Shopping Application Backend</h2>"))
	})

	users := r.Group("/api/users")
	{
		users.POST("/register", validate.Fields(handlers.RegisterRules...), handlers.Register(db))
		users.POST("/login", validate.Fields(handlers.LoginRules...),
			handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))
		users.GET("/", authRequired, handlers.GetMe(db))
		users.POST("/address", authRequired, validate.Fields(handlers.AddressRules...),
			handlers.UpdateAddress(db))
	}

	products := r.Group("/api/products")
	{
		products.POST("/upload", authRequired, validate.Fields(handlers.UploadProductRules...),
			handlers.UploadProduct(db))
		products.GET("/men", handlers.ListByCategory(db, models.CategoryMen))
		products.GET("/women", handlers.ListByCategory(db, models.CategoryWomen))
		products.GET("/kids", handlers.ListByCategory(db, models.CategoryKids))
		products.GET("/:product_id", handlers.GetProduct(db))
	}

	orders := r.Group("/api/orders")
	{
		orders.POST("/", authRequired, validate.Fields(handlers.CreateOrderRules...),
			handlers.CreateOrder(db))
		orders.GET("/all", authRequired, handlers.ListMyOrders(db))
	}

	payments := r.Group("/api/payments")
	{
		payments.POST("/pay", authRequired, validate.Fields(handlers.PayRules...),
			handlers.Pay(gateway))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
