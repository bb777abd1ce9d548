// models.go
package model

import "time"

// Order representa un envío asociado a una caja inteligente.
// boxStatus / receiverBoxStatus solo transicionan de vacío a "Opened",
// nunca al revés.
type Order struct {
	OrderID       string   `bson:"order_id" json:"orderId"`
	UserID        string   `bson:"user_id" json:"userId"`
	ESP32ID       string   `bson:"esp32_id" json:"esp32Id"` // dispositivo asignado al crear la orden
	Status        string   `bson:"status" json:"status"`    // estado logístico actual
	BoxStatus     string   `bson:"box_status" json:"boxStatus"`
	ReceiverBox   string   `bson:"receiver_box_status" json:"receiverBoxStatus"`
	SenderEmail   string   `bson:"sender_email" json:"senderEmail"`
	ReceiverEmail string   `bson:"receiver_email" json:"receiverEmail"`
	Shipping      Shipping `bson:"shipping" json:"shipping"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type Shipping struct {
	AddressLine1 string `bson:"address_line1" json:"addressLine1"`
	City         string `bson:"city" json:"city"`
	PostalCode   string `bson:"postal_code" json:"postalCode"`
	Province     string `bson:"province" json:"province"`
	Country      string `bson:"country" json:"country"`
	Comments     string `bson:"comments" json:"comments"`
}

// Valor que toma box_status / receiver_box_status al abrir la caja
const BoxOpened = "Opened"

// GPSSnapshot es la última posición reportada por un dispositivo.
// Cada reporte sobreescribe al anterior, no se guarda historial.
type GPSSnapshot struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	UniqueKey  string    `json:"unique_key"`
	ReceivedAt time.Time `json:"-"`
}
