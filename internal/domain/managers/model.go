package managers

type Manager struct {
	ID   int64
	Name string
}
