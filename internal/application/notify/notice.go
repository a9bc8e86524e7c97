// Package notify define el aviso de una línea que cada operación del back-office
// devuelve al administrador.
package notify

// Level severidad del aviso.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notice aviso localizado. Fields lleva los errores por campo de un formulario.
type Notice struct {
	Level   Level             `json:"level"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success aviso de operación completada.
func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }

// Error aviso de fallo.
func Error(msg string) Notice { return Notice{Level: LevelError, Message: msg} }

// Warning aviso de validación.
func Warning(msg string, fields map[string]string) Notice {
	return Notice{Level: LevelWarning, Message: msg, Fields: fields}
}

// IsZero indica que no hay aviso que mostrar.
func (n Notice) IsZero() bool { return n.Message == "" }

// Failed indica si el aviso corresponde a un error o advertencia.
func (n Notice) Failed() bool { return n.Level == LevelError || n.Level == LevelWarning }
