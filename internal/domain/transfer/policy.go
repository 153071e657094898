package transfer

// Funciones puras de política de cantidades (servicio de dominio).
// Los valores por defecto (retener 20% en origen, alternativa a la mitad)
// se configuran en el coordinador; aquí solo vive la aritmética.

// MaxTransferable cantidad máxima trasladable dejando en la bodega origen
// al menos la fracción retentionRatio de su stock actual.
// MaxTransferable = stock - floor(stock * retentionRatio), nunca negativo.
func MaxTransferable(sourceStock int, retentionRatio float64) int {
	if sourceStock <= 0 {
		return 0
	}
	retained := int(float64(sourceStock) * retentionRatio)
	max := sourceStock - retained
	if max < 0 {
		return 0
	}
	return max
}

// SafeAmount cantidad que puede trasladarse sin que el origen caiga bajo su
// piso de seguridad: min(solicitado, max(0, disponible - safetyThreshold)).
func SafeAmount(available, requested, safetyThreshold int) int {
	safe := available - safetyThreshold
	if safe < 0 {
		safe = 0
	}
	if requested < safe {
		return requested
	}
	return safe
}

// ReducedQuantity cantidad alternativa tras un rechazo (división entera).
// Con divisor <= 0 se usa 2.
func ReducedQuantity(quantity, divisor int) int {
	if divisor <= 0 {
		divisor = 2
	}
	return quantity / divisor
}
