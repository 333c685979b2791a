package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control/internal/application/auth"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/pkg/jwt"
)

// fakeUserRepo repositorio en memoria con la misma semántica que el real:
// Create devuelve ErrDuplicate si el username ya existe, FindByUsername
// devuelve nil, nil si no hay fila.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "stock-control-test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "maria",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role, "sin rol explícito se asigna user")

	// El hash queda en el repo, nunca el password en claro.
	stored := repo.byUsername["maria"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_RolExplicito(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin1", Password: "clave-segura", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "maria", Password: "password123", Role: "superadmin",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Username repetido → ErrDuplicate (lo garantiza la constraint de la DB,
// aquí emulada por el fake).
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "otra-clave"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	cfg := testJWTConfig()
	uc := auth.NewAuthUseCase(newFakeUserRepo(), cfg)
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Username: "admin1", Password: "clave-segura", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Username: "admin1", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(cfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin1", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

// Usuario inexistente y password incorrecto fallan con el MISMO error, para
// no permitir enumerar usernames.
func TestLogin_FalloUniforme(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "password123"})
	require.NoError(t, err)

	_, errNoUser := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "password123"})
	_, errBadPass := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPass)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
