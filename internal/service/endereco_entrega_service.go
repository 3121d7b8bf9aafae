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

// EnderecoEntregaService defines the business logic for delivery addresses
type EnderecoEntregaService interface {
	GetAll(ctx context.Context) ([]*dto.EnderecoEntregaResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EnderecoEntregaResponse, error)
	GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.EnderecoEntregaResponse, error)
	Create(ctx context.Context, req *dto.CreateEnderecoEntregaRequest) (*dto.EnderecoEntregaResponse, error)
	Update(ctx context.Context, req *dto.UpdateEnderecoEntregaRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type enderecoEntregaServiceImpl struct {
	enderecoRepo repository.EnderecoEntregaRepository
	uow          unitofwork.Factory
	logger       *zap.Logger
}

// NewEnderecoEntregaService creates a new EnderecoEntregaService
func NewEnderecoEntregaService(enderecoRepo repository.EnderecoEntregaRepository, uow unitofwork.Factory, logger *zap.Logger) EnderecoEntregaService {
	return &enderecoEntregaServiceImpl{enderecoRepo: enderecoRepo, uow: uow, logger: logger}
}

func (s *enderecoEntregaServiceImpl) GetAll(ctx context.Context) ([]*dto.EnderecoEntregaResponse, error) {
	enderecos, err := s.enderecoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Erro ao buscar todos os endereços de entrega", zap.Error(err))
		return nil, err
	}
	return dto.ToEnderecoEntregaResponses(enderecos), nil
}

func (s *enderecoEntregaServiceImpl) GetByID(ctx context.Context, id string) (*dto.EnderecoEntregaResponse, error) {
	enderecoID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao buscar endereço de entrega", zap.String("id", id))
		return nil, err
	}

	endereco, err := s.enderecoRepo.FindActiveByID(ctx, enderecoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Endereço de entrega não encontrado", zap.String("endereco_id", enderecoID.String()))
			return nil, ErrEnderecoNaoEncontrado
		}
		s.logger.Error("Erro ao buscar endereço de entrega", zap.String("endereco_id", enderecoID.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToEnderecoEntregaResponse(endereco), nil
}

func (s *enderecoEntregaServiceImpl) GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.EnderecoEntregaResponse, error) {
	id, err := parseID(usuarioID)
	if err != nil {
		s.logger.Warn("ID de usuário inválido ao buscar endereços", zap.String("usuario_id", usuarioID))
		return nil, err
	}

	enderecos, err := s.enderecoRepo.FindByUsuarioID(ctx, id)
	if err != nil {
		s.logger.Error("Erro ao buscar endereços do usuário", zap.String("usuario_id", id.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToEnderecoEntregaResponses(enderecos), nil
}

func (s *enderecoEntregaServiceImpl) Create(ctx context.Context, req *dto.CreateEnderecoEntregaRequest) (*dto.EnderecoEntregaResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	endereco := req.ToEnderecoEntrega()
	endereco.CreatedByUserID = userID

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return nil, err
	}
	defer uow.Close()

	created, err := uow.Enderecos().AddAndSave(ctx, endereco)
	if err != nil {
		s.logger.Error("Erro ao criar o endereço de entrega", zap.Error(err))
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a criação do endereço de entrega", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Endereço de entrega criado com sucesso", zap.String("endereco_id", created.ID.String()))
	return dto.ToEnderecoEntregaResponse(created), nil
}

func (s *enderecoEntregaServiceImpl) Update(ctx context.Context, req *dto.UpdateEnderecoEntregaRequest) (bool, error) {
	if req.ID == uuid.Nil {
		s.logger.Warn("ID do endereço de entrega é inválido")
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

	endereco, err := uow.Enderecos().FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Endereço de entrega não encontrado para o ID", zap.String("endereco_id", req.ID.String()))
			return false, ErrEnderecoNaoEncontrado
		}
		s.logger.Error("Erro ao buscar endereço para atualização", zap.String("endereco_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if endereco.IsDeleted {
		s.logger.Warn("Endereço de entrega já excluído", zap.String("endereco_id", req.ID.String()))
		return false, ErrEnderecoNaoEncontrado
	}

	req.ApplyTo(endereco)
	endereco.MarkUpdated(userID)

	if err := uow.Enderecos().Update(ctx, endereco); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrEnderecoNaoEncontrado
		}
		s.logger.Error("Erro ao atualizar o endereço de entrega", zap.String("endereco_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a atualização do endereço de entrega", zap.Error(err))
		return false, err
	}

	s.logger.Info("Endereço de entrega atualizado com sucesso", zap.String("endereco_id", req.ID.String()))
	return true, nil
}

func (s *enderecoEntregaServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	enderecoID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao excluir endereço de entrega", zap.String("id", id))
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

	endereco, err := uow.Enderecos().FindByID(ctx, enderecoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Endereço de entrega não encontrado para exclusão", zap.String("endereco_id", enderecoID.String()))
			return false, nil
		}
		s.logger.Error("Erro ao buscar endereço para exclusão", zap.String("endereco_id", enderecoID.String()), zap.Error(err))
		return false, err
	}
	if endereco.IsDeleted {
		s.logger.Warn("Endereço de entrega já excluído", zap.String("endereco_id", enderecoID.String()))
		return false, nil
	}

	if err := uow.Enderecos().SoftDelete(ctx, enderecoID, userID); err != nil {
		s.logger.Error("Erro ao excluir o endereço de entrega", zap.String("endereco_id", enderecoID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a exclusão do endereço de entrega", zap.Error(err))
		return false, err
	}

	s.logger.Info("Endereço de entrega excluído com sucesso", zap.String("endereco_id", enderecoID.String()))
	return true, nil
}
