// dto.go
package dto

// ScanRequest es lo que manda el cliente que escanea el QR.
// OrderID es opcional: si viene, reemplaza al candidato activo.
type ScanRequest struct {
	Data    string `json:"data"`
	OrderID string `json:"orderId"`
}

type ScanResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GPSReportRequest replica el payload que emite el firmware del ESP32
type GPSReportRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UniqueKey string  `json:"unique_key"`
}

type SearchOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type SearchOrderResponse struct {
	Message           string `json:"message"`
	OrderID           string `json:"orderId"`
	Status            string `json:"status"`
	BoxStatus         string `json:"boxStatus"`
	ReceiverBoxStatus string `json:"receiverBoxStatus"`
}

type LocationRequest struct {
	OrderID string `json:"orderId"`
}
