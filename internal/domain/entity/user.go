package entity

import "time"

// Roles de usuario administrador.
const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
)

// User es un usuario administrador del sistema. Todos los usuarios logueados
// son personal de confianza; el rol solo distingue al dueño (admin, ve
// ganancias y corrige deudas) del vendedor.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
