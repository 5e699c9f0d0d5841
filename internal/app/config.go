package app

import "time"

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string
	// KafkaBrokers: пустой список означает публикацию событий в журнал.
	KafkaBrokers []string
	EventsTopic  string
	// SeedDemoData наполняет каталог демонстрационными данными при старте.
	SeedDemoData    bool
	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает базовые адреса для gRPC и HTTP-метрик.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:        ":50051",
		MetricsAddr:     ":9090",
		EventsTopic:     "pizzeria.catalog.events",
		ShutdownTimeout: 5 * time.Second,
	}
}
