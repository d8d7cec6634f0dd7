// Package store implementa los stores de entidades de la consola: cada uno
// es dueño exclusivo de la lista en memoria de su tipo, con un flag de carga
// y operaciones CRUD que sincronizan contra el backend REST. El estado local
// solo se toca con la respuesta confirmada del servidor; nunca hay mutación
// optimista.
//
// Política de errores: toda falla se registra y se notifica al usuario.
// Refresh y ToggleActive no devuelven el error (no hay acción posible en el
// sitio de llamada); Create/Update sí, para que el formulario permanezca en
// pantalla y el usuario corrija.
package store

// replaceByID reemplaza in situ la fila cuyo id coincide por la
// representación devuelta por el servidor (reemplazo completo, no merge).
func replaceByID[T any](items []T, id string, idOf func(T) string, updated T) {
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = updated
			return
		}
	}
}
