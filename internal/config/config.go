// config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDBName string
	RabbitURL   string
	Port        string

	// Dirección del ESP32 que controla el servo (sin path, se agrega /operate)
	DeviceURL string

	// Intervalo mínimo entre comandos TOGGLE
	ToggleInterval time.Duration
	// Alcance del cooldown: "global" (comportamiento original) o "order"
	CooldownScope string
	// Token de override para admin. Vacío = deshabilitado.
	AdminToken string

	// SMTP para las notificaciones de caja abierta
	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	// Scripts auxiliares (lector QR local)
	ScriptPath         string
	ReceiverScriptPath string
	ScriptTimeout      time.Duration
}

func Load() *Config {
	// .env es opcional; en producción las variables vienen del entorno
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://host.docker.internal:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "smart_box_db"),
		RabbitURL:   getEnv("RABBIT_URL", "amqp://host.docker.internal"),
		Port:        getEnv("PORT", "8080"),

		DeviceURL: getEnv("DEVICE_URL", "http://192.168.241.179"),

		ToggleInterval: time.Duration(getEnvInt("TOGGLE_INTERVAL", 30)) * time.Second,
		CooldownScope:  getEnv("COOLDOWN_SCOPE", "global"),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),

		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvInt("SMTP_PORT", 587),
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),

		ScriptPath:         getEnv("SCRIPT_PATH", "./script.py"),
		ReceiverScriptPath: getEnv("RECEIVER_SCRIPT_PATH", "./receiver.py"),
		ScriptTimeout:      time.Duration(getEnvInt("SCRIPT_TIMEOUT", 20)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Valor inválido para %s, usando %d", key, fallback)
	}
	return fallback
}
