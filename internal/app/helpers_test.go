package app

import (
	"math"
	"net"
	"testing"

	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/service/pizza"
	"github.com/vladislavdragonenkov/pizzeria/internal/storage/memory"
)

func pizzaCommand(name string, ingredients ...domain.Identity) pizza.CreateCommand {
	return pizza.CreateCommand{Name: name, IngredientIDs: ingredients}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sizeOf(repo any) (int, bool) {
	return memory.Size(repo)
}

// findFreePort находит свободный порт для тестов
func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}
