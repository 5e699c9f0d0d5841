package memory

import (
	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
)

const customersCollection = "customers"

// customerRepositoryInMemory поддерживает полный набор операций над клиентами.
type customerRepositoryInMemory struct {
	data *repository.Set[*domain.Customer]
}

// NewCustomerRepository возвращает in-memory репозиторий клиентов.
func NewCustomerRepository(opts ...repository.Option) repository.Repository[*domain.Customer] {
	return &customerRepositoryInMemory{
		data: repository.NewSet[*domain.Customer](customersCollection, opts...),
	}
}

func (r *customerRepositoryInMemory) Add(customer *domain.Customer) {
	r.data.Add(customer)
}

func (r *customerRepositoryInMemory) Get(id domain.Identity) (*domain.Customer, error) {
	return r.data.Get(id)
}

func (r *customerRepositoryInMemory) Remove(customer *domain.Customer) {
	r.data.Remove(customer)
}

func (r *customerRepositoryInMemory) Update(customer *domain.Customer) {
	r.data.Update(customer)
}

func (r *customerRepositoryInMemory) Len() int {
	return r.data.Len()
}

var _ repository.Repository[*domain.Customer] = (*customerRepositoryInMemory)(nil)
