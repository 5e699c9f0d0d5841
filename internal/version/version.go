// Package version хранит сведения о сборке, подставляемые через -ldflags:
//
//	go build -ldflags "-X github.com/vladislavdragonenkov/pizzeria/internal/version.version=v1.2.0"
package version

import "fmt"

const serviceName = "pizzeria"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GetVersion возвращает версию сборки.
func GetVersion() string { return version }

// String возвращает строку для журнала запуска.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

// ClientID идентифицирует сервис во внешних системах (например, Kafka client.id).
func ClientID() string {
	return serviceName + "-" + version
}
