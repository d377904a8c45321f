// seed puebla la base de datos con datos de demostración: un admin, dos
// arrendatarios con sus usuarios, dos centros comerciales, cuatro locales
// y pagos de renta repartidos en varios meses y monedas.
//
// Uso: go run ./cmd/seed
// Idempotente a nivel de email: si el admin ya existe, aborta sin tocar nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/infrastructure/postgres"
	"github.com/tu-usuario/mall-office/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	mallRepo := postgres.NewMallRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)

	existing, err := userRepo.GetByEmail("admin@mall-office.local")
	if err != nil {
		fail("verificar admin existente: %v", err)
	}
	if existing != nil {
		fmt.Println("la base ya tiene datos de demo, nada que hacer")
		return
	}

	now := time.Now()

	admin := newUser("Admin", "admin@mall-office.local", "admin12345", access.RoleAdmin, now)
	ayse := newUser("Ayşe Demir", "ayse@mall-office.local", "cliente12345", access.RoleClient, now)
	mehmet := newUser("Mehmet Kaya", "mehmet@mall-office.local", "cliente12345", access.RoleClient, now)
	for _, u := range []*entity.User{admin, ayse, mehmet} {
		if err := userRepo.Create(u); err != nil {
			fail("crear usuario %s: %v", u.Email, err)
		}
	}

	clientAyse := &entity.Client{
		ID: uuid.New().String(), UserID: ayse.ID,
		Name: "Demir Tekstil", PhoneNumber: "+90 532 111 2233",
		CreatedAt: now, UpdatedAt: now,
	}
	clientMehmet := &entity.Client{
		ID: uuid.New().String(), UserID: mehmet.ID,
		Name: "Kaya Electrónica", PhoneNumber: "+90 533 444 5566",
		CreatedAt: now, UpdatedAt: now,
	}
	for _, c := range []*entity.Client{clientAyse, clientMehmet} {
		if err := clientRepo.Create(c); err != nil {
			fail("crear arrendatario %s: %v", c.Name, err)
		}
	}

	mallCentro := &entity.Mall{
		ID: uuid.New().String(), Name: "Galería Centro",
		City: "Estambul", Address: "İstiklal Cd. 120",
		CreatedAt: now, UpdatedAt: now,
	}
	mallNorte := &entity.Mall{
		ID: uuid.New().String(), Name: "Plaza Norte",
		City: "Ankara", Address: "Atatürk Blv. 45",
		CreatedAt: now, UpdatedAt: now,
	}
	for _, m := range []*entity.Mall{mallCentro, mallNorte} {
		if err := mallRepo.Create(m); err != nil {
			fail("crear centro comercial %s: %v", m.Name, err)
		}
	}

	stores := []*entity.Store{
		{ID: uuid.New().String(), Name: "Demir Tekstil Centro", Floor: 1, MallID: mallCentro.ID, ClientID: clientAyse.ID, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Demir Tekstil Norte", Floor: 2, MallID: mallNorte.ID, ClientID: clientAyse.ID, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Kaya Electrónica", Floor: 3, MallID: mallCentro.ID, ClientID: clientMehmet.ID, CreatedAt: now, UpdatedAt: now},
		// Local sin arrendatario asignado
		{ID: uuid.New().String(), Name: "Local vacante B-12", Floor: 2, MallID: mallCentro.ID, CreatedAt: now, UpdatedAt: now},
	}
	for _, s := range stores {
		if err := storeRepo.Create(s); err != nil {
			fail("crear local %s: %v", s.Name, err)
		}
	}

	// Pagos repartidos en tres meses y las tres monedas
	type seedPayment struct {
		store    *entity.Store
		amount   string
		currency string
		date     time.Time
	}
	base := time.Date(now.Year(), now.Month(), 15, 12, 0, 0, 0, time.UTC)
	plan := []seedPayment{
		{stores[0], "25000.00", entity.CurrencyTRY, base.AddDate(0, -2, 0)},
		{stores[0], "25000.00", entity.CurrencyTRY, base.AddDate(0, -1, 0)},
		{stores[0], "26500.00", entity.CurrencyTRY, base},
		{stores[1], "800.00", entity.CurrencyEUR, base.AddDate(0, -1, 0)},
		{stores[1], "800.00", entity.CurrencyEUR, base},
		{stores[2], "1200.00", entity.CurrencyUSD, base.AddDate(0, -2, 0)},
		{stores[2], "1200.00", entity.CurrencyUSD, base},
	}
	for _, sp := range plan {
		p := &entity.Payment{
			ID:        uuid.New().String(),
			StoreID:   sp.store.ID,
			Amount:    decimal.RequireFromString(sp.amount),
			Currency:  sp.currency,
			Date:      sp.date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := paymentRepo.Create(p); err != nil {
			fail("crear pago de %s: %v", sp.store.Name, err)
		}
	}

	fmt.Printf("demo lista: 3 usuarios, 2 arrendatarios, 2 centros, %d locales, %d pagos\n", len(stores), len(plan))
	fmt.Println("login admin: admin@mall-office.local / admin12345")
}

func newUser(name, email, password, role string, now time.Time) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password de %s: %v", email, err)
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
