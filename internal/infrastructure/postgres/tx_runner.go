package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	_ usecase.ProvisionTxRunner = (*TxRunner)(nil)
	_ usecase.VentaTxRunner     = (*TxRunner)(nil)
)

// TxRunner ejecuta unidades de trabajo transaccionales con repositorios atados
// a la transacción. Commit al retornar nil, rollback ante cualquier error.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta el aprovisionamiento de cuenta+empleado en una transacción.
func (t *TxRunner) Run(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	empleados repository.EmpleadoRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewUsuarioRepository(tx), NewEmpleadoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunVenta ejecuta el registro de una venta en una transacción.
func (t *TxRunner) RunVenta(ctx context.Context, fn func(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewVentaRepository(tx),
		NewProductoRepository(tx),
		NewClienteRepository(tx),
		NewEmpleadoRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
