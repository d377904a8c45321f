package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/mall-office/internal/domain/access"
)

// fakeOwnerFinder implementa StoreOwnerFinder en memoria para los tests.
type fakeOwnerFinder struct {
	owners map[string]string // storeID -> userID dueño ("" = sin cliente)
	err    error
	calls  int
}

func (f *fakeOwnerFinder) OwnerUserID(_ context.Context, storeID string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.owners[storeID], nil
}

func TestCanCreatePayment_AdminSiemprePuede(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{}}
	ok := access.CanCreatePayment(context.Background(), admin, "store-1", finder)
	assert.True(t, ok)
	assert.Zero(t, finder.calls, "admin no necesita resolver el dueño de la tienda")
}

func TestCanCreatePayment_ClientSobreTiendaPropia(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{"store-1": "user-client"}}
	ok := access.CanCreatePayment(context.Background(), client, "store-1", finder)
	assert.True(t, ok)
	assert.Equal(t, 1, finder.calls)
}

func TestCanCreatePayment_ClientSobreTiendaAjena(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{"store-1": "otro-usuario"}}
	ok := access.CanCreatePayment(context.Background(), client, "store-1", finder)
	assert.False(t, ok, "un client no puede registrar pagos contra tiendas ajenas")
}

func TestCanCreatePayment_TiendaInexistente(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{}}
	ok := access.CanCreatePayment(context.Background(), client, "no-existe", finder)
	assert.False(t, ok)
}

func TestCanCreatePayment_TiendaSinClienteAsignado(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{"store-1": ""}}
	ok := access.CanCreatePayment(context.Background(), client, "store-1", finder)
	assert.False(t, ok, "una tienda sin cliente no pertenece a nadie")
}

func TestCanCreatePayment_ErrorDeLookupDeniega(t *testing.T) {
	// Falla cerrado: un error de infraestructura se degrada a denegación,
	// nunca a permiso ni a fallo propagado.
	finder := &fakeOwnerFinder{err: errors.New("db caída")}
	ok := access.CanCreatePayment(context.Background(), client, "store-1", finder)
	assert.False(t, ok)
}

func TestCanCreatePayment_SinSesionORolInvalido(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{"store-1": "user-client"}}

	assert.False(t, access.CanCreatePayment(context.Background(), anon, "store-1", finder))
	assert.False(t, access.CanCreatePayment(context.Background(), noRole, "store-1", finder))
	assert.False(t, access.CanCreatePayment(context.Background(), weirdRole, "store-1", finder))
	assert.Zero(t, finder.calls, "sin rol válido no se consulta el almacén")
}

func TestCanCreatePayment_StoreIDVacio(t *testing.T) {
	finder := &fakeOwnerFinder{owners: map[string]string{"": "user-client"}}
	ok := access.CanCreatePayment(context.Background(), client, "", finder)
	assert.False(t, ok)
	assert.Zero(t, finder.calls)
}
