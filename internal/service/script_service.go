package service

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"time"
)

var ErrScriptTimeout = errors.New("el script excedió el tiempo máximo de ejecución")

// ScriptService corre los scripts Python del lector QR local.
// No tiene relación con el camino del escaneo; es una utilidad aparte.
type ScriptService struct {
	timeout time.Duration
}

func NewScriptService(timeout time.Duration) *ScriptService {
	return &ScriptService{timeout: timeout}
}

// Run ejecuta el script y devuelve su salida combinada.
// Si no termina dentro del timeout, el proceso se mata.
func (s *ScriptService) Run(ctx context.Context, scriptPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "python", scriptPath)
	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		log.Printf("Salida del script %s: %s", scriptPath, out)
	}

	if ctx.Err() == context.DeadlineExceeded {
		log.Printf("Script %s terminado por timeout (%s)", scriptPath, s.timeout)
		return "", ErrScriptTimeout
	}
	if err != nil {
		return "", err
	}
	return "Script executed successfully.", nil
}
