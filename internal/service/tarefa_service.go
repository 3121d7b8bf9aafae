package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-test-api/internal/dto"
	"project-test-api/internal/repository"
	"project-test-api/internal/unitofwork"
)

// TarefaService defines the business logic for tarefas
type TarefaService interface {
	GetAll(ctx context.Context) ([]*dto.TarefaResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TarefaResponse, error)
	GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.TarefaResponse, error)
	Create(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error)
	Update(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type tarefaServiceImpl struct {
	tarefaRepo repository.TarefaRepository
	uow        unitofwork.Factory
	logger     *zap.Logger
}

// NewTarefaService creates a new TarefaService
func NewTarefaService(tarefaRepo repository.TarefaRepository, uow unitofwork.Factory, logger *zap.Logger) TarefaService {
	return &tarefaServiceImpl{tarefaRepo: tarefaRepo, uow: uow, logger: logger}
}

// GetAll returns every non-deleted tarefa. Storage errors propagate unchanged.
func (s *tarefaServiceImpl) GetAll(ctx context.Context) ([]*dto.TarefaResponse, error) {
	tarefas, err := s.tarefaRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Erro ao buscar todas as tarefas", zap.Error(err))
		return nil, err
	}
	return dto.ToTarefaResponses(tarefas), nil
}

// GetByID returns a tarefa by id. The id is validated before any storage access.
func (s *tarefaServiceImpl) GetByID(ctx context.Context, id string) (*dto.TarefaResponse, error) {
	tarefaID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao buscar tarefa", zap.String("id", id))
		return nil, err
	}

	tarefa, err := s.tarefaRepo.FindActiveByID(ctx, tarefaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Tarefa não encontrada", zap.String("tarefa_id", tarefaID.String()))
			return nil, ErrTarefaNaoEncontrada
		}
		s.logger.Error("Erro ao buscar tarefa", zap.String("tarefa_id", tarefaID.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToTarefaResponse(tarefa), nil
}

// GetByUsuarioID returns the non-deleted tarefas of a usuario
func (s *tarefaServiceImpl) GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.TarefaResponse, error) {
	id, err := parseID(usuarioID)
	if err != nil {
		s.logger.Warn("ID de usuário inválido ao buscar tarefas", zap.String("usuario_id", usuarioID))
		return nil, err
	}

	tarefas, err := s.tarefaRepo.FindByUsuarioID(ctx, id)
	if err != nil {
		s.logger.Error("Erro ao buscar tarefas do usuário", zap.String("usuario_id", id.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToTarefaResponses(tarefas), nil
}

// Create inserts a new tarefa stamped with the authenticated user id
func (s *tarefaServiceImpl) Create(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	tarefa := req.ToTarefa()
	tarefa.CreatedByUserID = userID

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return nil, err
	}
	defer uow.Close()

	created, err := uow.Tarefas().AddAndSave(ctx, tarefa)
	if err != nil {
		s.logger.Error("Erro ao criar a tarefa", zap.Error(err))
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a criação da tarefa", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Tarefa criada com sucesso", zap.String("tarefa_id", created.ID.String()))
	return dto.ToTarefaResponse(created), nil
}

// Update applies the modification and stamps the update audit fields. A
// missing tarefa is an explicit not-found error.
func (s *tarefaServiceImpl) Update(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error) {
	if req.ID == uuid.Nil {
		s.logger.Warn("ID da tarefa é inválido")
		return false, ErrIDInvalido
	}

	userID, err := currentUserID(ctx)
	if err != nil {
		return false, err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return false, err
	}
	defer uow.Close()

	tarefa, err := uow.Tarefas().FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Tarefa não encontrada para o ID", zap.String("tarefa_id", req.ID.String()))
			return false, ErrTarefaNaoEncontrada
		}
		s.logger.Error("Erro ao buscar tarefa para atualização", zap.String("tarefa_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if tarefa.IsDeleted {
		s.logger.Warn("Tarefa já excluída", zap.String("tarefa_id", req.ID.String()))
		return false, ErrTarefaNaoEncontrada
	}

	req.ApplyTo(tarefa)
	tarefa.MarkUpdated(userID)

	if err := uow.Tarefas().Update(ctx, tarefa); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTarefaNaoEncontrada
		}
		s.logger.Error("Erro ao atualizar a tarefa", zap.String("tarefa_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a atualização da tarefa", zap.Error(err))
		return false, err
	}

	s.logger.Info("Tarefa atualizada com sucesso", zap.String("tarefa_id", req.ID.String()))
	return true, nil
}

// Delete soft-deletes the tarefa. A missing tarefa returns false without an
// error; storage failures propagate unchanged.
func (s *tarefaServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	tarefaID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao excluir tarefa", zap.String("id", id))
		return false, err
	}

	userID, err := currentUserID(ctx)
	if err != nil {
		return false, err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return false, err
	}
	defer uow.Close()

	tarefa, err := uow.Tarefas().FindByID(ctx, tarefaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Tarefa não encontrada para exclusão", zap.String("tarefa_id", tarefaID.String()))
			return false, nil
		}
		s.logger.Error("Erro ao buscar tarefa para exclusão", zap.String("tarefa_id", tarefaID.String()), zap.Error(err))
		return false, err
	}
	if tarefa.IsDeleted {
		s.logger.Warn("Tarefa já excluída", zap.String("tarefa_id", tarefaID.String()))
		return false, nil
	}

	if err := uow.Tarefas().SoftDelete(ctx, tarefaID, userID); err != nil {
		s.logger.Error("Erro ao excluir a tarefa", zap.String("tarefa_id", tarefaID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a exclusão da tarefa", zap.Error(err))
		return false, err
	}

	s.logger.Info("Tarefa excluída com sucesso", zap.String("tarefa_id", tarefaID.String()))
	return true, nil
}
