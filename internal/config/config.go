package config

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Orders struct {
	HTTPAddr            string
	RabbitURL           string
	OrdersExchange      string
	ShutdownGracePeriod time.Duration
}

type Products struct {
	HTTPAddr            string
	ShutdownGracePeriod time.Duration
}

type Users struct {
	HTTPAddr            string
	ShutdownGracePeriod time.Duration
}

// LoadOrders reads the orders service config from the environment. An empty
// ORDERS_RABBIT_URL disables event publishing.
func LoadOrders() Orders {
	return Orders{
		HTTPAddr:            getEnv("ORDERS_HTTP_ADDR", ":8080"),
		RabbitURL:           getEnv("ORDERS_RABBIT_URL", ""),
		OrdersExchange:      getEnv("ORDERS_EXCHANGE", "orders.events"),
		ShutdownGracePeriod: parseDuration("ORDERS_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func LoadProducts() Products {
	return Products{
		HTTPAddr:            getEnv("PRODUCTS_HTTP_ADDR", ":8081"),
		ShutdownGracePeriod: parseDuration("PRODUCTS_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func LoadUsers() Users {
	return Users{
		HTTPAddr:            getEnv("USERS_HTTP_ADDR", ":8082"),
		ShutdownGracePeriod: parseDuration("USERS_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return def
}
