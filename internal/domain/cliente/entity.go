package cliente

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNombreVacio   = errors.New("el nombre no puede estar vacío")
	ErrApellidoVacio = errors.New("el apellido no puede estar vacío")
)

// Cliente representa un cliente del negocio
type Cliente struct {
	ID        string    `json:"id_cliente"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCliente crea un nuevo cliente
func NewCliente(nombre, apellido, direccion, telefono, email string) (*Cliente, error) {
	if nombre == "" {
		return nil, ErrNombreVacio
	}

	if apellido == "" {
		return nil, ErrApellidoVacio
	}

	now := time.Now()
	return &Cliente{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Apellido:  apellido,
		Direccion: direccion,
		Telefono:  telefono,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NombreCompleto retorna nombre y apellido concatenados
func (c *Cliente) NombreCompleto() string {
	return c.Nombre + " " + c.Apellido
}

// Update actualiza los datos del cliente
func (c *Cliente) Update(nombre, apellido, direccion, telefono, email string) error {
	if nombre == "" {
		return ErrNombreVacio
	}

	if apellido == "" {
		return ErrApellidoVacio
	}

	c.Nombre = nombre
	c.Apellido = apellido
	c.Direccion = direccion
	c.Telefono = telefono
	c.Email = email
	c.UpdatedAt = time.Now()

	return nil
}
