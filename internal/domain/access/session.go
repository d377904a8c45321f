// Package access implementa el evaluador de políticas de acceso del back
// office: gating de operaciones por entidad, filtros de visibilidad a nivel
// de fila y el chequeo de propiedad al crear pagos.
//
// Todas las decisiones son funciones puras de la sesión; la única excepción
// es la verificación de propiedad de CanCreatePayment, que hace una lectura
// contra el almacén a través de StoreOwnerFinder.
package access

// Roles reconocidos. Cualquier otro valor (incluido vacío) no pasa ninguna
// regla que exija un rol concreto.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Session es la identidad del solicitante de una petición.
// El zero value representa una petición sin autenticar.
type Session struct {
	Authenticated bool
	UserID        string
	Role          string
}

// Anonymous devuelve la sesión de una petición sin autenticar.
func Anonymous() Session {
	return Session{}
}

// SignedIn construye la sesión de un usuario autenticado.
func SignedIn(userID, role string) Session {
	return Session{Authenticated: true, UserID: userID, Role: role}
}

// IsAdmin informa si la sesión pertenece a un administrador.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}

// IsClient informa si la sesión pertenece a un arrendatario.
func (s Session) IsClient() bool {
	return s.Authenticated && s.Role == RoleClient
}

// IsSignedIn informa si hay sesión, con cualquier rol (o ninguno).
func (s Session) IsSignedIn() bool {
	return s.Authenticated
}
