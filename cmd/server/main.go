package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-box-service/internal/config"
	"smart-box-service/internal/controller"
	"smart-box-service/internal/metrics"
	"smart-box-service/internal/middleware"
	"smart-box-service/internal/rabbit"
	"smart-box-service/internal/repository"
	"smart-box-service/internal/service"
)

func main() {
	cfg := config.Load()

	metrics.Register()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Repositorio y servicios
	repo := repository.NewMongoOrderRepository(db)
	orderService := service.NewOrderService(repo)
	gateway := service.NewDeviceGateway(cfg.DeviceURL)
	mailService := service.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	unlockService := service.NewUnlockService(repo, gateway, mailService, cfg.ToggleInterval, cfg.CooldownScope, cfg.AdminToken)
	gpsService := service.NewGPSService(repo)
	scriptService := service.NewScriptService(cfg.ScriptTimeout)

	// Handlers
	ctrl := controller.NewSmartBoxController(orderService, unlockService, gpsService, scriptService, cfg.ScriptPath, cfg.ReceiverScriptPath)

	// Router
	r := gin.Default()

	r.GET("/ping", ctrl.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Escaneo de QR (remitente y receptor)
	r.POST("/endpoint", ctrl.ScanSender)
	r.POST("/endpointforreceiver", ctrl.ScanReceiver)

	// GPS del dispositivo
	r.POST("/gps", middleware.GPSRateLimit(), ctrl.ReportGPS)
	r.GET("/receivedlocation/gps", ctrl.RawGPS)
	r.POST("/receivedlocation", ctrl.LocationForOrder)
	r.GET("/getLatestGPS/:orderId", ctrl.LatestGPSForOrder)

	// Órdenes
	r.POST("/searchOrder", ctrl.SearchOrder)
	r.GET("/admin/orders", ctrl.GetAllOrders)

	// Scripts del lector QR local
	r.POST("/runScript", ctrl.RunScript)
	r.POST("/runReceiverScript", ctrl.RunReceiverScript)

	// Conexión a RabbitMQ
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}

	rabbit.SetupConsumers(ch, orderService)

	// Ejecutar servidor
	log.Printf("Smart Box Service ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
