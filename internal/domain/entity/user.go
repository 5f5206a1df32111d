package entity

// User representa un usuario del sistema.
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	ProfilePicture string
}
