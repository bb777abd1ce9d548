// rate_limit.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// GPSRateLimit acota los reportes del firmware por IP.
// El ESP32 reporta cada pocos segundos; un firmware colgado en loop
// no tiene por qué tumbar el servicio.
func GPSRateLimit() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  60,
	}
	store := memory.NewStore()
	return mgin.NewMiddleware(limiter.New(store, rate))
}
