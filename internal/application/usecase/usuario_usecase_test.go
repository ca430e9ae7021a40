package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

func TestUsuarioCreate_UsaClavePorDefecto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo, "cambiar123")

	creado, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "gerente"})
	require.NoError(t, err)
	assert.Equal(t, "gerente", creado.NombreUsuario)

	almacenado, err := repo.GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, almacenado)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(almacenado.Clave), []byte("cambiar123")),
		"sin clave explícita debe usarse la credencial por defecto, con hash")
}

func TestUsuarioCreate_LoginDuplicado(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo(), "cambiar123")
	_, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "gerente"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUsuarioRequest{NombreUsuario: " gerente "})
	assert.ErrorIs(t, err, domain.ErrDuplicado, "el login se compara normalizado")
}

func TestUsuarioUpdate_LoginGeneradoEsInmutable(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo, "cambiar123")
	// Cuenta como las que provisiona el asignador.
	generado, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "empleado7"})
	require.NoError(t, err)

	_, err = uc.Update(generado.ID, dto.UpdateUsuarioRequest{NombreUsuario: ptr("otro")})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Contains(t, err.Error(), "empleado7")

	// La clave sí puede cambiarse aunque el login sea inmutable.
	actualizado, err := uc.Update(generado.ID, dto.UpdateUsuarioRequest{Clave: ptr("nueva-clave")})
	require.NoError(t, err)
	assert.Equal(t, "empleado7", actualizado.NombreUsuario)

	almacenado, err := repo.GetByID(generado.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(almacenado.Clave), []byte("nueva-clave")))
}

func TestUsuarioUpdate_RenombraCuentaManual(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo(), "cambiar123")
	creado, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "gerente"})
	require.NoError(t, err)

	actualizado, err := uc.Update(creado.ID, dto.UpdateUsuarioRequest{NombreUsuario: ptr("gerencia")})
	require.NoError(t, err)
	assert.Equal(t, "gerencia", actualizado.NombreUsuario)
}

func TestUsuarioUpdate_RenombreADuplicado(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo(), "cambiar123")
	_, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "gerente"})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "cajero"})
	require.NoError(t, err)

	_, err = uc.Update(otro.ID, dto.UpdateUsuarioRequest{NombreUsuario: ptr("gerente")})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestUsuarioDelete(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo(), "cambiar123")
	creado, err := uc.Create(dto.CreateUsuarioRequest{NombreUsuario: "gerente"})
	require.NoError(t, err)

	out, err := uc.Delete(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Usuario eliminado exitosamente", out.Message)
	assert.NotNil(t, out.Usuario.FechaEliminacion)

	_, err = uc.GetByID(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
