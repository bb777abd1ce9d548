package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smart-box-service/internal/metrics"
)

// Cliente HTTP del ESP32 que mueve el servo de la cerradura.
type DeviceGateway struct {
	deviceURL string
	client    *http.Client
}

// Crea el gateway apuntando a la dirección fija del dispositivo.
// Sin timeout propio: el escaneo espera la respuesta del dispositivo
// el tiempo que haga falta (se puede acotar vía el context del request).
func NewDeviceGateway(deviceURL string) *DeviceGateway {
	return &DeviceGateway{
		deviceURL: deviceURL,
		client:    &http.Client{},
	}
}

type toggleCommand struct {
	Command string `json:"command"`
}

// Toggle manda un único comando TOGGLE a /operate del dispositivo y
// devuelve el cuerpo del ack. Cualquier respuesta del dispositivo cuenta
// como éxito; solo un error de transporte es fallo. Sin reintentos.
func (g *DeviceGateway) Toggle(ctx context.Context) (string, error) {
	payload, err := json.Marshal(toggleCommand{Command: "TOGGLE"})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.deviceURL+"/operate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	metrics.ActuationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ActuationsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("fallo la señal al ESP32: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ActuationsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("fallo leyendo el ack del ESP32: %w", err)
	}

	metrics.ActuationsTotal.WithLabelValues("ok").Inc()
	return string(body), nil
}
