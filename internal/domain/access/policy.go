package access

// Entity identifica una lista del back office sujeta a control de acceso.
type Entity string

const (
	EntityUser    Entity = "user"
	EntityMall    Entity = "mall"
	EntityStore   Entity = "store"
	EntityClient  Entity = "client"
	EntityPayment Entity = "payment"
)

// Operation es la operación solicitada sobre una entidad.
type Operation string

const (
	OpCreate Operation = "create"
	OpQuery  Operation = "query"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// CanOperate decide si la sesión puede ejecutar la operación sobre la entidad.
//
// Tabla de decisión:
//   - query: cualquier sesión autenticada (la visibilidad fina la da QueryFilter).
//   - create sobre Payment: admin o client (el chequeo de propiedad por ítem
//     lo hace CanCreatePayment).
//   - cualquier otra mutación: solo admin.
//
// Sin sesión, o con un rol fuera de los reconocidos cuando la regla exige
// uno, la respuesta es siempre false: no hay permiso por defecto.
func CanOperate(s Session, e Entity, op Operation) bool {
	switch op {
	case OpQuery:
		return s.IsSignedIn()
	case OpCreate:
		if e == EntityPayment {
			return s.IsAdmin() || s.IsClient()
		}
		return s.IsAdmin()
	case OpUpdate, OpDelete:
		return s.IsAdmin()
	}
	return false
}
