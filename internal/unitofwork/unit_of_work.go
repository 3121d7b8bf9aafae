package unitofwork

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"project-test-api/internal/repository"
)

// ErrClosed is returned when Commit is called after the unit of work was closed.
var ErrClosed = errors.New("unit of work is closed")

// UnitOfWork aggregates every repository over one transaction scope so that
// multiple repository operations commit atomically together.
type UnitOfWork interface {
	Usuarios() repository.UsuarioRepository
	Acessos() repository.AcessoUsuarioRepository
	Pedidos() repository.PedidoRepository
	Enderecos() repository.EnderecoEntregaRepository
	Tarefas() repository.TarefaRepository

	// Commit flushes every staged change atomically. Storage errors are
	// propagated unchanged.
	Commit(ctx context.Context) error
	// Close releases the transaction, rolling back anything not committed.
	// Safe to call more than once.
	Close() error
}

// Factory opens a new unit of work per request scope.
type Factory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type gormFactory struct {
	db *gorm.DB
}

// NewFactory creates a Factory over the shared database session.
func NewFactory(db *gorm.DB) Factory {
	return &gormFactory{db: db}
}

func (f *gormFactory) Begin(ctx context.Context) (UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormUnitOfWork{tx: tx}, nil
}

// gormUnitOfWork binds lazily-built repositories to one open transaction.
type gormUnitOfWork struct {
	tx        *gorm.DB
	committed bool
	closed    bool

	usuarios  repository.UsuarioRepository
	acessos   repository.AcessoUsuarioRepository
	pedidos   repository.PedidoRepository
	enderecos repository.EnderecoEntregaRepository
	tarefas   repository.TarefaRepository
}

func (u *gormUnitOfWork) Usuarios() repository.UsuarioRepository {
	if u.usuarios == nil {
		u.usuarios = repository.NewUsuarioRepository(u.tx)
	}
	return u.usuarios
}

func (u *gormUnitOfWork) Acessos() repository.AcessoUsuarioRepository {
	if u.acessos == nil {
		u.acessos = repository.NewAcessoUsuarioRepository(u.tx)
	}
	return u.acessos
}

func (u *gormUnitOfWork) Pedidos() repository.PedidoRepository {
	if u.pedidos == nil {
		u.pedidos = repository.NewPedidoRepository(u.tx)
	}
	return u.pedidos
}

func (u *gormUnitOfWork) Enderecos() repository.EnderecoEntregaRepository {
	if u.enderecos == nil {
		u.enderecos = repository.NewEnderecoEntregaRepository(u.tx)
	}
	return u.enderecos
}

func (u *gormUnitOfWork) Tarefas() repository.TarefaRepository {
	if u.tarefas == nil {
		u.tarefas = repository.NewTarefaRepository(u.tx)
	}
	return u.tarefas
}

func (u *gormUnitOfWork) Commit(ctx context.Context) error {
	if u.closed {
		return ErrClosed
	}
	if err := u.tx.WithContext(ctx).Commit().Error; err != nil {
		return err
	}
	u.committed = true
	return nil
}

func (u *gormUnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	if u.committed {
		return nil
	}
	return u.tx.Rollback().Error
}
