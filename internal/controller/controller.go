package controller

import (
	"fmt"
	"net/http"

	"smart-box-service/internal/dto"
	"smart-box-service/internal/metrics"
	"smart-box-service/internal/repository"
	"smart-box-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SmartBoxController struct {
	Orders  *service.OrderService
	Unlock  *service.UnlockService
	GPS     *service.GPSService
	Scripts *service.ScriptService

	ScriptPath         string
	ReceiverScriptPath string
}

func NewSmartBoxController(orders *service.OrderService, unlock *service.UnlockService, gps *service.GPSService, scripts *service.ScriptService, scriptPath, receiverScriptPath string) *SmartBoxController {
	return &SmartBoxController{
		Orders:             orders,
		Unlock:             unlock,
		GPS:                gps,
		Scripts:            scripts,
		ScriptPath:         scriptPath,
		ReceiverScriptPath: receiverScriptPath,
	}
}

// GET /ping — health check
func (ctl *SmartBoxController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "PONG")
}

// POST /endpoint — escaneo del remitente
func (ctl *SmartBoxController) ScanSender(c *gin.Context) {
	ctl.handleScan(c, service.VariantSender)
}

// POST /endpointforreceiver — escaneo del receptor
func (ctl *SmartBoxController) ScanReceiver(c *gin.Context) {
	ctl.handleScan(c, service.VariantReceiver)
}

func (ctl *SmartBoxController) handleScan(c *gin.Context, variant service.ScanVariant) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := ctl.Unlock.SubmitScan(c.Request.Context(), req.Data, req.OrderID, variant)
	if err != nil {
		// Falla del gateway o de la base: el accionamiento no se completó
		metrics.ScansTotal.WithLabelValues(string(variant), "error").Inc()
		c.JSON(http.StatusInternalServerError, dto.ScanResponse{
			Success: false,
			Message: "Failed to open the box.",
		})
		return
	}

	metrics.ScansTotal.WithLabelValues(string(variant), string(res.Outcome)).Inc()

	switch res.Outcome {
	case service.OutcomeOpened:
		c.JSON(http.StatusOK, dto.ScanResponse{
			Success: true,
			Message: "Your box has been opened successfully.",
		})
	case service.OutcomeCooldown:
		c.JSON(http.StatusOK, dto.ScanResponse{
			Success: false,
			Message: fmt.Sprintf("TOGGLE command already sent. Please wait %d seconds before toggling again.", res.RemainingSeconds),
		})
	case service.OutcomeNoMatch:
		c.JSON(http.StatusOK, dto.ScanResponse{
			Success: false,
			Message: "No matching order ID found.",
		})
	default: // OutcomeWaiting
		c.JSON(http.StatusOK, dto.ScanResponse{
			Success: false,
			Message: "Waiting for data or order ID...",
		})
	}
}

// POST /gps — reporte de posición del ESP32, responde texto plano
func (ctl *SmartBoxController) ReportGPS(c *gin.Context) {
	var req dto.GPSReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctl.GPS.Report(req.Latitude, req.Longitude, req.UniqueKey)
	metrics.GPSReportsTotal.Inc()
	c.String(http.StatusOK, "GPS data received")
}

// GET /receivedlocation/gps — snapshot crudo, sin filtrar por orden.
// Lo usa el mapa del dashboard: muestra lo último que haya, sea de quien sea.
func (ctl *SmartBoxController) RawGPS(c *gin.Context) {
	snap, _ := ctl.GPS.Snapshot()
	c.JSON(http.StatusOK, snap)
}

// POST /receivedlocation — snapshot acotado a la orden
func (ctl *SmartBoxController) LocationForOrder(c *gin.Context) {
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order ID is required"})
		return
	}

	snap, err := ctl.GPS.ForOrder(c.Request.Context(), req.OrderID)
	if err != nil {
		ctl.gpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GET /getLatestGPS/:orderId
func (ctl *SmartBoxController) LatestGPSForOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	snap, err := ctl.GPS.ForOrder(c.Request.Context(), orderID)
	if err != nil {
		ctl.gpsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Latest GPS data retrieved successfully",
		"data":    snap,
	})
}

func (ctl *SmartBoxController) gpsError(c *gin.Context, err error) {
	switch err {
	case repository.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "No order found for this Order ID"})
	case service.ErrNoDeviceForOrder:
		c.JSON(http.StatusBadRequest, gin.H{"message": "No ESP32 ID associated with this order"})
	case service.ErrNoGPSData:
		c.JSON(http.StatusNotFound, gin.H{"message": "No GPS data available for this order"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
	}
}

// POST /searchOrder — busca la orden y la deja como candidata para el escaneo
func (ctl *SmartBoxController) SearchOrder(c *gin.Context) {
	var req dto.SearchOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order ID is required"})
		return
	}

	order, err := ctl.Orders.GetByOrderID(c.Request.Context(), req.OrderID)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	// Buscar la orden la registra como candidata para la comparación del QR
	ctl.Unlock.RecordOrder(req.OrderID)

	c.JSON(http.StatusOK, dto.SearchOrderResponse{
		Message:           "Order found successfully",
		OrderID:           order.OrderID,
		Status:            order.Status,
		BoxStatus:         order.BoxStatus,
		ReceiverBoxStatus: order.ReceiverBox,
	})
}

// POST /runScript
func (ctl *SmartBoxController) RunScript(c *gin.Context) {
	ctl.runScript(c, ctl.ScriptPath)
}

// POST /runReceiverScript
func (ctl *SmartBoxController) RunReceiverScript(c *gin.Context) {
	ctl.runScript(c, ctl.ReceiverScriptPath)
}

func (ctl *SmartBoxController) runScript(c *gin.Context, path string) {
	msg, err := ctl.Scripts.Run(c.Request.Context(), path)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, msg)
}

// GET /admin/orders — listado completo para el dashboard
func (ctl *SmartBoxController) GetAllOrders(c *gin.Context) {
	orders, err := ctl.Orders.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
