// Package ports define los puertos transversales de la capa de aplicación.
package ports

// Notifier canal de notificaciones hacia el usuario (el equivalente headless
// de los diálogos de la app). Los stores notifican el resultado de cada
// operación; la implementación decide cómo presentarlo.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// NopNotifier descarta las notificaciones; útil en tests y tareas batch.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Error(string, string)   {}
