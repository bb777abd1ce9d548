package rabbit

import (
	"context"
	"encoding/json"
	"log"

	"smart-box-service/internal/model"
	"smart-box-service/internal/service"
)

type PlaceOrderConsumer struct {
	Service *service.OrderService
}

func NewPlaceOrderConsumer(s *service.OrderService) *PlaceOrderConsumer {
	return &PlaceOrderConsumer{Service: s}
}

// El mensaje trae el esp32Id asignado a la caja: acá queda asociado a la
// orden y no cambia más durante su vida.
type PlacedOrderMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		OrderID       string `json:"orderId"`
		UserID        string `json:"userId"`
		ESP32ID       string `json:"esp32Id"`
		SenderEmail   string `json:"senderEmail"`
		ReceiverEmail string `json:"receiverEmail"`
		// Si el JSON trae "shipping", se guarda acá.
		// Si no lo trae, queda vacío (Zero Value) y el servicio
		// usa la dirección por defecto.
		Shipping model.Shipping `json:"shipping"`
	} `json:"message"`
}

func (c *PlaceOrderConsumer) Handle(msg []byte) error {

	log.Println("[Rabbit] Evento recibido: place_order")

	var event PlacedOrderMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Println("Error parseando mensaje:", err)
		return err
	}

	_, err := c.Service.InitOrder(
		context.Background(),
		event.Message.OrderID,
		event.Message.UserID,
		event.Message.ESP32ID,
		event.Message.SenderEmail,
		event.Message.ReceiverEmail,
		event.Message.Shipping,
	)

	if err != nil {
		log.Println("❌ Error creando la orden:", err)
		return err
	}

	log.Println("✔ Orden inicializada:", event.Message.OrderID, "con dispositivo", event.Message.ESP32ID)
	return nil
}
