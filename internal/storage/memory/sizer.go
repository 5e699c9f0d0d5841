package memory

// Sizer реализуют все in-memory репозитории пакета; используется метриками и health-проверками.
type Sizer interface {
	Len() int
}

// Size возвращает количество записей в репозитории, если он умеет его сообщить.
func Size(repo any) (int, bool) {
	sizer, ok := repo.(Sizer)
	if !ok {
		return 0, false
	}
	return sizer.Len(), true
}
