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

// PedidoService defines the business logic for pedidos
type PedidoService interface {
	GetAll(ctx context.Context) ([]*dto.PedidoResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PedidoResponse, error)
	GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.PedidoResponse, error)
	Create(ctx context.Context, req *dto.CreatePedidoRequest) (*dto.PedidoResponse, error)
	Update(ctx context.Context, req *dto.UpdatePedidoRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type pedidoServiceImpl struct {
	pedidoRepo repository.PedidoRepository
	uow        unitofwork.Factory
	logger     *zap.Logger
}

// NewPedidoService creates a new PedidoService
func NewPedidoService(pedidoRepo repository.PedidoRepository, uow unitofwork.Factory, logger *zap.Logger) PedidoService {
	return &pedidoServiceImpl{pedidoRepo: pedidoRepo, uow: uow, logger: logger}
}

func (s *pedidoServiceImpl) GetAll(ctx context.Context) ([]*dto.PedidoResponse, error) {
	pedidos, err := s.pedidoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Erro ao buscar todos os pedidos", zap.Error(err))
		return nil, err
	}
	return dto.ToPedidoResponses(pedidos), nil
}

func (s *pedidoServiceImpl) GetByID(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	pedidoID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao buscar pedido", zap.String("id", id))
		return nil, err
	}

	pedido, err := s.pedidoRepo.FindActiveByID(ctx, pedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Pedido não encontrado", zap.String("pedido_id", pedidoID.String()))
			return nil, ErrPedidoNaoEncontrado
		}
		s.logger.Error("Erro ao buscar pedido", zap.String("pedido_id", pedidoID.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToPedidoResponse(pedido), nil
}

func (s *pedidoServiceImpl) GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.PedidoResponse, error) {
	id, err := parseID(usuarioID)
	if err != nil {
		s.logger.Warn("ID de usuário inválido ao buscar pedidos", zap.String("usuario_id", usuarioID))
		return nil, err
	}

	pedidos, err := s.pedidoRepo.FindByUsuarioID(ctx, id)
	if err != nil {
		s.logger.Error("Erro ao buscar pedidos do usuário", zap.String("usuario_id", id.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToPedidoResponses(pedidos), nil
}

func (s *pedidoServiceImpl) Create(ctx context.Context, req *dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	pedido := req.ToPedido()
	pedido.CreatedByUserID = userID

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return nil, err
	}
	defer uow.Close()

	created, err := uow.Pedidos().AddAndSave(ctx, pedido)
	if err != nil {
		s.logger.Error("Erro ao criar o pedido", zap.Error(err))
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a criação do pedido", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Pedido criado com sucesso", zap.String("pedido_id", created.ID.String()))
	return dto.ToPedidoResponse(created), nil
}

func (s *pedidoServiceImpl) Update(ctx context.Context, req *dto.UpdatePedidoRequest) (bool, error) {
	if req.ID == uuid.Nil {
		s.logger.Warn("ID do pedido é inválido")
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

	pedido, err := uow.Pedidos().FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Pedido não encontrado para o ID", zap.String("pedido_id", req.ID.String()))
			return false, ErrPedidoNaoEncontrado
		}
		s.logger.Error("Erro ao buscar pedido para atualização", zap.String("pedido_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if pedido.IsDeleted {
		s.logger.Warn("Pedido já excluído", zap.String("pedido_id", req.ID.String()))
		return false, ErrPedidoNaoEncontrado
	}

	req.ApplyTo(pedido)
	pedido.MarkUpdated(userID)

	if err := uow.Pedidos().Update(ctx, pedido); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPedidoNaoEncontrado
		}
		s.logger.Error("Erro ao atualizar o pedido", zap.String("pedido_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a atualização do pedido", zap.Error(err))
		return false, err
	}

	s.logger.Info("Pedido atualizado com sucesso", zap.String("pedido_id", req.ID.String()))
	return true, nil
}

func (s *pedidoServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	pedidoID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao excluir pedido", zap.String("id", id))
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

	pedido, err := uow.Pedidos().FindByID(ctx, pedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Pedido não encontrado para exclusão", zap.String("pedido_id", pedidoID.String()))
			return false, nil
		}
		s.logger.Error("Erro ao buscar pedido para exclusão", zap.String("pedido_id", pedidoID.String()), zap.Error(err))
		return false, err
	}
	if pedido.IsDeleted {
		s.logger.Warn("Pedido já excluído", zap.String("pedido_id", pedidoID.String()))
		return false, nil
	}

	if err := uow.Pedidos().SoftDelete(ctx, pedidoID, userID); err != nil {
		s.logger.Error("Erro ao excluir o pedido", zap.String("pedido_id", pedidoID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a exclusão do pedido", zap.Error(err))
		return false, err
	}

	s.logger.Info("Pedido excluído com sucesso", zap.String("pedido_id", pedidoID.String()))
	return true, nil
}
