package memory

import (
	"github.com/vladislavdragonenkov/pizzeria/internal/domain"
	"github.com/vladislavdragonenkov/pizzeria/internal/repository"
)

const usersCollection = "users"

// userRepositoryInMemory разрешает только чтение: Add/Remove/Update у него отсутствуют.
type userRepositoryInMemory struct {
	data *repository.Set[*domain.User]
}

// NewUserRepository возвращает репозиторий пользователей только для чтения.
// Пользователи передаются один раз при создании.
func NewUserRepository(users []*domain.User, opts ...repository.Option) repository.Getter[*domain.User] {
	data := repository.NewSet[*domain.User](usersCollection, opts...)
	for _, user := range users {
		if user == nil {
			continue
		}
		data.Add(user)
	}
	return &userRepositoryInMemory{data: data}
}

func (r *userRepositoryInMemory) Get(id domain.Identity) (*domain.User, error) {
	return r.data.Get(id)
}

func (r *userRepositoryInMemory) Len() int {
	return r.data.Len()
}

var _ repository.Getter[*domain.User] = (*userRepositoryInMemory)(nil)
