package entity

import "time"

// Decision traza de una decisión del motor (evaluación de necesidad, selección
// de bodega, cambio de modo). Es un registro de razonamiento, no una mutación
// de stock: vive fuera del audit log de stock.
type Decision struct {
	ID           string
	Actor        string
	DecisionType string
	Reasoning    string
	Details      map[string]any
	Timestamp    time.Time
}
