package service

import "time"

const (
	BulkDemandThreshold = 5000.0 // demanda por encima de la cual se clasifica como compra masiva
	SmallOrderThreshold = 100.0  // EOQ por debajo de este valor indica pedidos pequeños y frecuentes

	// Clave fija del almacén clave-valor para la preferencia de tema
	ThemeStorageKey = "quantor-theme"

	// Tiempo que una notificación permanece visible
	NotificationDelay = 3 * time.Second
)

const (
	MsgInvalidInput = "Please enter positive numbers for all fields."
	MsgOutOfRange   = "These values are too large or too small to compute an order quantity."
	MsgResetDone    = "Form and logs cleared."
)
