package config

import (
	"os"

	"github.com/joho/godotenv"

	"aura/internal/email"
)

// Config всё окружение сервиса одной структурой; читается один раз в main
type Config struct {
	Addr          string
	MongoURI      string
	MongoDB       string
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	CloudinaryURL string
	EmailJS       email.Config
}

// Load подхватывает .env, если он есть, и собирает конфиг из окружения
func Load() Config {
	// .env отсутствует в проде, поэтому ошибка не фатальна
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getenv("ADDR", ":9091"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getenv("MONGO_DB", "aura"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		EmailJS: email.Config{
			ServiceID:         os.Getenv("EMAILJS_SERVICE_ID"),
			OrderTemplateID:   os.Getenv("EMAILJS_ORDER_TEMPLATE_ID"),
			ContactTemplateID: os.Getenv("EMAILJS_CONTACT_TEMPLATE_ID"),
			PublicKey:         os.Getenv("EMAILJS_PUBLIC_KEY"),
			ToEmail:           getenv("ORDER_NOTIFY_EMAIL", "djibouti.aura@gmail.com"),
		},
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
