package dto

import (
	"time"

	"github.com/khalessi/gestor/internal/domain/cliente"
)

// ClienteRequest representa la petición de alta o modificación de un cliente
type ClienteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Apellido  string `json:"apellido" binding:"required"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// ClienteResponse representa la respuesta de un cliente
type ClienteResponse struct {
	ID        string    `json:"id_cliente"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClienteListResponse representa la respuesta de la lista de clientes
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Total int               `json:"total"`
}

// ToClienteResponse convierte la entidad de dominio en su respuesta
func ToClienteResponse(c *cliente.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClienteListResponse convierte la colección de clientes en su respuesta
func ToClienteListResponse(clientes []*cliente.Cliente) ClienteListResponse {
	items := make([]ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, ToClienteResponse(c))
	}

	return ClienteListResponse{
		Items: items,
		Total: len(items),
	}
}
