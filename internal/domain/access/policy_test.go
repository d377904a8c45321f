package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/mall-office/internal/domain/access"
)

var (
	admin     = access.SignedIn("user-admin", access.RoleAdmin)
	client    = access.SignedIn("user-client", access.RoleClient)
	noRole    = access.SignedIn("user-sin-rol", "")
	weirdRole = access.SignedIn("user-raro", "superuser")
	anon      = access.Anonymous()
)

func TestSession_Predicados(t *testing.T) {
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsClient())
	assert.True(t, admin.IsSignedIn())

	assert.True(t, client.IsClient())
	assert.False(t, client.IsAdmin())
	assert.True(t, client.IsSignedIn())

	// Sin rol o con rol desconocido: autenticado pero sin pasar ningún
	// predicado de rol concreto.
	assert.False(t, noRole.IsAdmin())
	assert.False(t, noRole.IsClient())
	assert.True(t, noRole.IsSignedIn())

	assert.False(t, weirdRole.IsAdmin())
	assert.False(t, weirdRole.IsClient())

	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.IsClient())
	assert.False(t, anon.IsSignedIn())
}

func TestCanOperate_MutacionesSoloAdmin(t *testing.T) {
	entities := []access.Entity{
		access.EntityUser, access.EntityMall, access.EntityStore, access.EntityClient,
	}
	for _, e := range entities {
		for _, op := range []access.Operation{access.OpCreate, access.OpUpdate, access.OpDelete} {
			assert.True(t, access.CanOperate(admin, e, op),
				"admin debe poder %s sobre %s", op, e)
			assert.False(t, access.CanOperate(client, e, op),
				"client no debe poder %s sobre %s", op, e)
			assert.False(t, access.CanOperate(anon, e, op),
				"anónimo no debe poder %s sobre %s", op, e)
			assert.False(t, access.CanOperate(weirdRole, e, op),
				"rol desconocido no debe poder %s sobre %s", op, e)
		}
	}
}

func TestCanOperate_QueryRequiereSesion(t *testing.T) {
	entities := []access.Entity{
		access.EntityUser, access.EntityMall, access.EntityStore,
		access.EntityClient, access.EntityPayment,
	}
	for _, e := range entities {
		assert.True(t, access.CanOperate(admin, e, access.OpQuery))
		assert.True(t, access.CanOperate(client, e, access.OpQuery))
		// Cualquier sesión autenticada puede consultar, incluso sin rol:
		// la visibilidad real la decide el filtro de filas.
		assert.True(t, access.CanOperate(noRole, e, access.OpQuery))
		assert.False(t, access.CanOperate(anon, e, access.OpQuery),
			"sin sesión no hay query sobre %s", e)
	}
}

func TestCanOperate_PaymentCreateAdminOClient(t *testing.T) {
	assert.True(t, access.CanOperate(admin, access.EntityPayment, access.OpCreate))
	assert.True(t, access.CanOperate(client, access.EntityPayment, access.OpCreate))
	assert.False(t, access.CanOperate(noRole, access.EntityPayment, access.OpCreate))
	assert.False(t, access.CanOperate(weirdRole, access.EntityPayment, access.OpCreate))
	assert.False(t, access.CanOperate(anon, access.EntityPayment, access.OpCreate))

	// Update y delete de pagos siguen siendo solo-admin.
	assert.True(t, access.CanOperate(admin, access.EntityPayment, access.OpUpdate))
	assert.False(t, access.CanOperate(client, access.EntityPayment, access.OpUpdate))
	assert.True(t, access.CanOperate(admin, access.EntityPayment, access.OpDelete))
	assert.False(t, access.CanOperate(client, access.EntityPayment, access.OpDelete))
}

func TestCanOperate_OperacionDesconocida(t *testing.T) {
	assert.False(t, access.CanOperate(admin, access.EntityUser, access.Operation("truncate")))
}

func TestQueryFilter_AdminVeTodo(t *testing.T) {
	for _, e := range []access.Entity{
		access.EntityUser, access.EntityMall, access.EntityStore,
		access.EntityClient, access.EntityPayment,
	} {
		f := access.QueryFilter(admin, e)
		assert.True(t, f.All, "admin debe ver todas las filas de %s", e)
		assert.False(t, f.DenyAll())
	}
}

func TestQueryFilter_ClientRestringidoPorDueno(t *testing.T) {
	for _, e := range []access.Entity{
		access.EntityStore, access.EntityClient, access.EntityPayment,
	} {
		f := access.QueryFilter(client, e)
		assert.False(t, f.All)
		assert.Equal(t, "user-client", f.OwnerUserID,
			"client solo ve filas propias en %s", e)
		assert.False(t, f.DenyAll())
	}

	// User y Mall no tienen filtro de fila para sesiones autenticadas.
	for _, e := range []access.Entity{access.EntityUser, access.EntityMall} {
		f := access.QueryFilter(client, e)
		assert.True(t, f.All)
	}
}

func TestQueryFilter_SinSesionNoVeNada(t *testing.T) {
	for _, e := range []access.Entity{
		access.EntityUser, access.EntityMall, access.EntityStore,
		access.EntityClient, access.EntityPayment,
	} {
		f := access.QueryFilter(anon, e)
		assert.True(t, f.DenyAll(), "anónimo no debe ver filas de %s", e)
	}
}

func TestQueryFilter_RolDesconocidoNoVeFilasFiltradas(t *testing.T) {
	// Defensivo: aunque el gate de operación dejara pasar a un rol raro,
	// el filtro de filas no le concede nada en las listas con dueño.
	for _, e := range []access.Entity{
		access.EntityStore, access.EntityClient, access.EntityPayment,
	} {
		f := access.QueryFilter(weirdRole, e)
		assert.True(t, f.DenyAll(), "rol desconocido no debe ver filas de %s", e)
		f = access.QueryFilter(noRole, e)
		assert.True(t, f.DenyAll(), "sesión sin rol no debe ver filas de %s", e)
	}
}

func TestQueryFilter_ClientSinUserIDNiegaTodo(t *testing.T) {
	// Sesión client con ID vacío: nunca debería ocurrir, pero el filtro
	// degrada a negar todo en lugar de emparejar con dueño vacío.
	broken := access.SignedIn("", access.RoleClient)
	f := access.QueryFilter(broken, access.EntityPayment)
	assert.True(t, f.DenyAll())
}

func TestQueryFilter_EntidadDesconocida(t *testing.T) {
	f := access.QueryFilter(admin, access.Entity("warehouse"))
	assert.True(t, f.DenyAll())
}
