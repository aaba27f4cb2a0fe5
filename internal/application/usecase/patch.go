package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain"
)

// applyText aplica un campo de texto opcional. null o vacío son inválidos.
func applyText(field string, o dto.Optional[string], dst *string) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return fmt.Errorf("%s: %w", field, domain.ErrNullField)
	}
	v := strings.TrimSpace(o.Value)
	if v == "" {
		return fmt.Errorf("%s no puede estar vacío: %w", field, domain.ErrInvalidInput)
	}
	*dst = v
	return nil
}

// field par nombre/valor para validar obligatorios en orden.
type field struct{ name, value string }

// required valida que los campos de texto obligatorios no estén vacíos.
func required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s es requerido: %w", f.name, domain.ErrInvalidInput)
		}
	}
	return nil
}
