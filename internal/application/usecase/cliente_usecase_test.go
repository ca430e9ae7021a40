package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestClienteCreate_NormalizaTextos(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	creado, err := uc.Create(dto.CreateClienteRequest{
		Nombres:   "  María  ",
		Apellidos: ptr(" Gómez "),
		Telefono:  ptr("   "),
		Email:     ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "María", creado.Nombres, "los textos deben recortarse")
	require.NotNil(t, creado.Apellidos)
	assert.Equal(t, "Gómez", *creado.Apellidos)
	assert.Nil(t, creado.Telefono, "un opcional en blanco se guarda como nulo")
	assert.Nil(t, creado.Email)
}

func TestClienteCreate_NombresRequerido(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.Create(dto.CreateClienteRequest{Nombres: "   "})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestClienteGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.GetByID(9999)
	require.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Contains(t, err.Error(), "el cliente con el id 9999 no existe")
}

func TestClienteUpdate_ParcialConservaYLimpia(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	creado, err := uc.Create(dto.CreateClienteRequest{
		Nombres:  "María",
		Telefono: ptr("555-0101"),
		Email:    ptr("maria@example.com"),
	})
	require.NoError(t, err)

	actualizado, err := uc.Update(creado.ID, dto.UpdateClienteRequest{
		Telefono: ptr(""), // presente y vacío: limpia el campo
	})
	require.NoError(t, err)
	assert.Nil(t, actualizado.Telefono, "un valor vacío presente limpia el campo")
	require.NotNil(t, actualizado.Email)
	assert.Equal(t, "maria@example.com", *actualizado.Email, "los campos omitidos no cambian")
	assert.Equal(t, "María", actualizado.Nombres)
}

func TestClienteUpdate_NombresVacioRechazado(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	creado, err := uc.Create(dto.CreateClienteRequest{Nombres: "María"})
	require.NoError(t, err)

	_, err = uc.Update(creado.ID, dto.UpdateClienteRequest{Nombres: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestClienteDelete_SnapshotYVisibilidad(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := usecase.NewClienteUseCase(repo)
	creado, err := uc.Create(dto.CreateClienteRequest{Nombres: "María"})
	require.NoError(t, err)

	out, err := uc.Delete(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cliente eliminado exitosamente", out.Message)
	assert.Equal(t, "María", out.Cliente.Nombres)
	assert.NotNil(t, out.Cliente.FechaEliminacion)

	_, err = uc.GetByID(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado, "un cliente eliminado no debe ser visible")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "los eliminados no aparecen en el listado")

	// Borrar dos veces produce el mismo NotFound que un id inexistente.
	_, err = uc.Delete(creado.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
