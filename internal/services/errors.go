package services

import (
	"errors"
	"fmt"
	"strings"
)

// Common service errors
var (
	ErrNotFound        = errors.New("registro no encontrado")
	ErrInvalidState    = errors.New("transición de estado inválida")
	ErrIncompleteInput = errors.New("información de cotización incompleta")
	ErrTariffNotFound  = errors.New("tarifa CFE no encontrada")
)

// Completeness failure reasons
const (
	ReasonProspectIncomplete = "información de prospecto incompleta"
	ReasonSystemMissing      = "información del sistema propuesto faltante"
)

// IncompleteInputError lists the required fields that were empty after normalization.
type IncompleteInputError struct {
	Reason string
	Fields []string
}

func (e *IncompleteInputError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func (e *IncompleteInputError) Is(target error) bool {
	return target == ErrIncompleteInput
}

// TariffNotFoundError is returned when the catalog has no tariff for the quoted id.
type TariffNotFoundError struct {
	ID int
}

func (e *TariffNotFoundError) Error() string {
	return fmt.Sprintf("la tarifa CFE con ID %d no existe", e.ID)
}

func (e *TariffNotFoundError) Is(target error) bool {
	return target == ErrTariffNotFound
}
