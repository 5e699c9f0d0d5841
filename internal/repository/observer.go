package repository

// Operation — имя операции над коллекцией для метрик и логов.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationGet    Operation = "get"
	OperationRemove Operation = "remove"
	OperationUpdate Operation = "update"
)

// Observer получает уведомление о каждой выполненной операции.
// err отличен от nil только для неудачного Get.
type Observer interface {
	ObserveOperation(collection string, op Operation, err error)
}

// Option настраивает Set при создании.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver подключает наблюдателя операций (например, Prometheus-метрики).
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, Operation, error) {}
