package dto

import "time"

// LoginRequest representa la petición de inicio de sesión
type LoginRequest struct {
	Usuario    string `json:"usuario" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// LoginResponse representa la respuesta del inicio de sesión
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Usuario   string    `json:"usuario"`
}
