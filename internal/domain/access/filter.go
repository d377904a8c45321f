package access

// RowFilter restringe qué filas de una lista son visibles para una sesión.
// Los repositorios lo traducen a SQL; nunca inspeccionan la sesión.
//
// Tres estados posibles:
//   - All=true: sin restricción (admin, o listas sin filtro de fila).
//   - OwnerUserID != "": solo las filas cuyo dueño transitivo
//     (client.user_id) coincide.
//   - zero value: no se ve ninguna fila.
type RowFilter struct {
	All         bool
	OwnerUserID string
}

// DenyAll informa si el filtro no deja ver ninguna fila. Los repositorios
// deben devolver el conjunto vacío sin consultar la base de datos.
func (f RowFilter) DenyAll() bool {
	return !f.All && f.OwnerUserID == ""
}

// QueryFilter devuelve el filtro de filas de la entidad para la sesión.
//
// User y Mall no tienen filtro de fila: cualquier sesión autenticada ve todo.
// Store, Client y Payment restringen a las filas del arrendatario:
//   - Store:   store.client.user_id == sesión
//   - Client:  client.user_id == sesión
//   - Payment: payment.store.client.user_id == sesión
//
// Una sesión sin autenticar, o con rol no reconocido, no ve ninguna fila
// aunque el gate de operación se hubiese saltado aguas arriba.
func QueryFilter(s Session, e Entity) RowFilter {
	switch e {
	case EntityUser, EntityMall:
		if s.IsSignedIn() {
			return RowFilter{All: true}
		}
		return RowFilter{}
	case EntityStore, EntityClient, EntityPayment:
		if s.IsAdmin() {
			return RowFilter{All: true}
		}
		if s.IsClient() && s.UserID != "" {
			return RowFilter{OwnerUserID: s.UserID}
		}
		return RowFilter{}
	}
	return RowFilter{}
}
