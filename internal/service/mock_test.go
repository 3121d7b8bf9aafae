package service

import (
	"context"

	"github.com/google/uuid"

	"project-test-api/internal/domain"
	"project-test-api/internal/repository"
	"project-test-api/internal/unitofwork"
)

// MockTarefaRepository implements repository.TarefaRepository with
// overridable functions per method.
type MockTarefaRepository struct {
	GetAllFunc          func(ctx context.Context) ([]domain.Tarefa, error)
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error)
	FindActiveByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error)
	FindByUsuarioIDFunc func(ctx context.Context, usuarioID uuid.UUID) ([]domain.Tarefa, error)
	AddAndSaveFunc      func(ctx context.Context, tarefa *domain.Tarefa) (*domain.Tarefa, error)
	UpdateFunc          func(ctx context.Context, tarefa *domain.Tarefa) error
	SoftDeleteFunc      func(ctx context.Context, id uuid.UUID, deletedBy string) error
}

func (m *MockTarefaRepository) GetAll(ctx context.Context) ([]domain.Tarefa, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockTarefaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockTarefaRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error) {
	return m.FindActiveByIDFunc(ctx, id)
}

func (m *MockTarefaRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.Tarefa, error) {
	return m.FindByUsuarioIDFunc(ctx, usuarioID)
}

func (m *MockTarefaRepository) AddAndSave(ctx context.Context, tarefa *domain.Tarefa) (*domain.Tarefa, error) {
	return m.AddAndSaveFunc(ctx, tarefa)
}

func (m *MockTarefaRepository) Update(ctx context.Context, tarefa *domain.Tarefa) error {
	return m.UpdateFunc(ctx, tarefa)
}

func (m *MockTarefaRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	return m.SoftDeleteFunc(ctx, id, deletedBy)
}

// MockUsuarioRepository implements repository.UsuarioRepository.
type MockUsuarioRepository struct {
	GetAllFunc         func(ctx context.Context) ([]domain.Usuario, error)
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Usuario, error)
	FindActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Usuario, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.Usuario, error)
	AddAndSaveFunc     func(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	UpdateFunc         func(ctx context.Context, usuario *domain.Usuario) error
	SoftDeleteFunc     func(ctx context.Context, id uuid.UUID, deletedBy string) error
}

func (m *MockUsuarioRepository) GetAll(ctx context.Context) ([]domain.Usuario, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockUsuarioRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error) {
	return m.FindActiveByIDFunc(ctx, id)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *MockUsuarioRepository) AddAndSave(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	return m.AddAndSaveFunc(ctx, usuario)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) error {
	return m.UpdateFunc(ctx, usuario)
}

func (m *MockUsuarioRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	return m.SoftDeleteFunc(ctx, id, deletedBy)
}

// MockAcessoUsuarioRepository implements repository.AcessoUsuarioRepository.
type MockAcessoUsuarioRepository struct {
	GetAllFunc          func(ctx context.Context) ([]domain.AcessoUsuario, error)
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.AcessoUsuario, error)
	FindByUsuarioIDFunc func(ctx context.Context, usuarioID uuid.UUID) ([]domain.AcessoUsuario, error)
	AddAndSaveFunc      func(ctx context.Context, acesso *domain.AcessoUsuario) (*domain.AcessoUsuario, error)
	UpdateFunc          func(ctx context.Context, acesso *domain.AcessoUsuario) error
	SoftDeleteFunc      func(ctx context.Context, id uuid.UUID, deletedBy string) error
}

func (m *MockAcessoUsuarioRepository) GetAll(ctx context.Context) ([]domain.AcessoUsuario, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockAcessoUsuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AcessoUsuario, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockAcessoUsuarioRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.AcessoUsuario, error) {
	return m.FindByUsuarioIDFunc(ctx, usuarioID)
}

func (m *MockAcessoUsuarioRepository) AddAndSave(ctx context.Context, acesso *domain.AcessoUsuario) (*domain.AcessoUsuario, error) {
	return m.AddAndSaveFunc(ctx, acesso)
}

func (m *MockAcessoUsuarioRepository) Update(ctx context.Context, acesso *domain.AcessoUsuario) error {
	return m.UpdateFunc(ctx, acesso)
}

func (m *MockAcessoUsuarioRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	return m.SoftDeleteFunc(ctx, id, deletedBy)
}

// MockUnitOfWork implements unitofwork.UnitOfWork over plain mock repositories
// and records the commit and close calls.
type MockUnitOfWork struct {
	UsuarioRepo  repository.UsuarioRepository
	AcessoRepo   repository.AcessoUsuarioRepository
	PedidoRepo   repository.PedidoRepository
	EnderecoRepo repository.EnderecoEntregaRepository
	TarefaRepo   repository.TarefaRepository

	Committed bool
	Closed    bool
}

func (m *MockUnitOfWork) Usuarios() repository.UsuarioRepository          { return m.UsuarioRepo }
func (m *MockUnitOfWork) Acessos() repository.AcessoUsuarioRepository     { return m.AcessoRepo }
func (m *MockUnitOfWork) Pedidos() repository.PedidoRepository            { return m.PedidoRepo }
func (m *MockUnitOfWork) Enderecos() repository.EnderecoEntregaRepository { return m.EnderecoRepo }
func (m *MockUnitOfWork) Tarefas() repository.TarefaRepository            { return m.TarefaRepo }

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	m.Committed = true
	return nil
}

func (m *MockUnitOfWork) Close() error {
	m.Closed = true
	return nil
}

// MockFactory implements unitofwork.Factory returning a fixed unit of work.
type MockFactory struct {
	UoW      *MockUnitOfWork
	BeginErr error
	Begun    bool
}

func (f *MockFactory) Begin(ctx context.Context) (unitofwork.UnitOfWork, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	f.Begun = true
	return f.UoW, nil
}
