package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mall-office/internal/application/auth"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // id -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return r.GetByEmail(email) }
func (r *fakeUserRepo) Update(u *entity.User) error                    { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error                         { delete(r.users, id); return nil }
func (r *fakeUserRepo) Count() (int, error)                            { return len(r.users), nil }

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "mall-office-test"}

func TestRegisterFirstAdmin_PrimerUsuarioEsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterFirstAdmin(dto.RegisterRequest{
		Name: "Gerente", Email: "gerente@mall.com", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, access.RoleAdmin, out.Role,
		"el primer usuario del sistema arranca como admin")
	assert.Equal(t, "gerente@mall.com", out.Email)
}

func TestRegisterFirstAdmin_ConUsuariosExistentesSeDeniega(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterFirstAdmin(dto.RegisterRequest{Email: "a@mall.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterFirstAdmin(dto.RegisterRequest{Email: "b@mall.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"tras el bootstrap los usuarios se crean vía el endpoint gateado a admins")
}

func TestRegisterFirstAdmin_NombreVacioUsaEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterFirstAdmin(dto.RegisterRequest{Email: "a@mall.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "a@mall.com", out.Name)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["u1"] = &entity.User{
		ID: "u1", Email: "tenant@mall.com", PasswordHash: string(hash), Role: access.RoleClient,
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Email: "tenant@mall.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, access.RoleClient, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)
	repo.users["u1"] = &entity.User{ID: "u1", Email: "tenant@mall.com", PasswordHash: string(hash)}
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "tenant@mall.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@mall.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
