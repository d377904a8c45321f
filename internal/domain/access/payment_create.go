package access

import "context"

// StoreOwnerFinder resuelve el usuario dueño de una tienda (vía su cliente).
// Devuelve "" sin error si la tienda no existe o no tiene cliente asignado.
type StoreOwnerFinder interface {
	OwnerUserID(ctx context.Context, storeID string) (string, error)
}

// CanCreatePayment es el chequeo a nivel de ítem para crear un pago.
//
// Un admin siempre puede. Un client solo puede registrar pagos contra una
// tienda de su propiedad: se resuelve el dueño de la tienda y se compara con
// la sesión. El filtro de lista no alcanza aquí: restringe lecturas, no la
// clave foránea de una fila nueva.
//
// Falla cerrado: tienda inexistente, dueño distinto o cualquier error del
// lookup deniegan la operación. El error nunca se propaga al caller.
func CanCreatePayment(ctx context.Context, s Session, storeID string, stores StoreOwnerFinder) bool {
	if !s.IsSignedIn() {
		return false
	}
	if s.IsAdmin() {
		return true
	}
	if !s.IsClient() {
		return false
	}
	if storeID == "" || s.UserID == "" {
		return false
	}
	owner, err := stores.OwnerUserID(ctx, storeID)
	if err != nil {
		return false
	}
	return owner != "" && owner == s.UserID
}
