package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrEmptyUpload     = errors.New("el archivo no contiene filas")
	ErrUnsupportedFile = errors.New("formato de archivo no soportado")
)
