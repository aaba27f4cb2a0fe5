package entity

import "time"

// Admin representa un administrador del back-office. El email es su identidad.
type Admin struct {
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
}
