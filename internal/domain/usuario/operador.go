package usuario

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsuarioVacio  = errors.New("el usuario no puede estar vacío")
	ErrSinContrasena = errors.New("debe configurarse una contraseña o un hash de contraseña")
	ErrCredenciales  = errors.New("credenciales incorrectas")
)

// Operador es el único usuario del sistema. No hay tabla de usuarios: las
// credenciales se configuran por entorno, en texto plano o como hash bcrypt.
type Operador struct {
	Usuario        string
	contrasena     string
	contrasenaHash string
}

// NewOperador crea el operador del sistema. Si se provee un hash bcrypt la
// verificación usa el hash; la contraseña en texto plano solo se acepta como
// alternativa de desarrollo.
func NewOperador(usuario, contrasena, contrasenaHash string) (*Operador, error) {
	if usuario == "" {
		return nil, ErrUsuarioVacio
	}

	if contrasena == "" && contrasenaHash == "" {
		return nil, ErrSinContrasena
	}

	return &Operador{
		Usuario:        usuario,
		contrasena:     contrasena,
		contrasenaHash: contrasenaHash,
	}, nil
}

// Verificar valida las credenciales presentadas contra las configuradas
func (o *Operador) Verificar(usuario, contrasena string) error {
	if usuario != o.Usuario {
		return ErrCredenciales
	}

	if o.contrasenaHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(o.contrasenaHash), []byte(contrasena)); err != nil {
			return ErrCredenciales
		}
		return nil
	}

	if contrasena != o.contrasena {
		return ErrCredenciales
	}

	return nil
}
