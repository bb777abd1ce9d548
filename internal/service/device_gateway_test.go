package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceGateway_TogglePostsCommand(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte("Servo toggled OK"))
	}))
	defer srv.Close()

	gw := NewDeviceGateway(srv.URL)
	ack, err := gw.Toggle(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Servo toggled OK", ack)
	assert.Equal(t, "/operate", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	var cmd map[string]string
	assert.NoError(t, json.Unmarshal(gotBody, &cmd))
	assert.Equal(t, "TOGGLE", cmd["command"])
}

// Cualquier respuesta del dispositivo cuenta como ack, incluso un 500:
// el firmware no respeta códigos HTTP, responde lo que puede.
func TestDeviceGateway_AnyResponseIsAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("busy"))
	}))
	defer srv.Close()

	gw := NewDeviceGateway(srv.URL)
	ack, err := gw.Toggle(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "busy", ack)
}

func TestDeviceGateway_TransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // dirección válida pero nadie escucha

	gw := NewDeviceGateway(srv.URL)
	_, err := gw.Toggle(context.Background())
	assert.Error(t, err)
}
