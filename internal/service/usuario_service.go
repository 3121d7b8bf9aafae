package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
	"project-test-api/internal/dto"
	"project-test-api/internal/repository"
	"project-test-api/internal/unitofwork"
)

// UsuarioService defines the business logic for usuarios
type UsuarioService interface {
	GetAll(ctx context.Context) ([]*dto.UsuarioResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error)
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error)
	Update(ctx context.Context, req *dto.UpdateUsuarioRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type usuarioServiceImpl struct {
	usuarioRepo repository.UsuarioRepository
	uow         unitofwork.Factory
	logger      *zap.Logger
}

// NewUsuarioService creates a new UsuarioService
func NewUsuarioService(usuarioRepo repository.UsuarioRepository, uow unitofwork.Factory, logger *zap.Logger) UsuarioService {
	return &usuarioServiceImpl{usuarioRepo: usuarioRepo, uow: uow, logger: logger}
}

func (s *usuarioServiceImpl) GetAll(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	usuarios, err := s.usuarioRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Erro ao buscar todos os usuários", zap.Error(err))
		return nil, err
	}
	return dto.ToUsuarioResponses(usuarios), nil
}

func (s *usuarioServiceImpl) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuarioID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao buscar usuário", zap.String("id", id))
		return nil, err
	}

	usuario, err := s.usuarioRepo.FindActiveByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Usuário não encontrado", zap.String("usuario_id", usuarioID.String()))
			return nil, ErrUsuarioNaoEncontrado
		}
		s.logger.Error("Erro ao buscar usuário", zap.String("usuario_id", usuarioID.String()), zap.Error(err))
		return nil, err
	}
	return dto.ToUsuarioResponse(usuario), nil
}

// Create inserts the usuario and its access-grant record in one unit of work
// so both rows commit atomically.
func (s *usuarioServiceImpl) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("E-mail já cadastrado", zap.String("email", req.Email))
		return nil, ErrEmailJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Erro ao verificar e-mail do usuário", zap.Error(err))
		return nil, err
	}

	usuario := req.ToUsuario()
	usuario.CreatedByUserID = userID

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Erro ao abrir unidade de trabalho", zap.Error(err))
		return nil, err
	}
	defer uow.Close()

	created, err := uow.Usuarios().AddAndSave(ctx, usuario)
	if err != nil {
		s.logger.Error("Erro ao criar o usuário", zap.Error(err))
		return nil, err
	}

	acesso := &domain.AcessoUsuario{UsuarioID: created.ID}
	acesso.CreatedByUserID = userID
	if _, err := uow.Acessos().AddAndSave(ctx, acesso); err != nil {
		s.logger.Error("Erro ao criar o acesso do usuário", zap.Error(err))
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a criação do usuário", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Usuário criado com sucesso", zap.String("usuario_id", created.ID.String()))
	return dto.ToUsuarioResponse(created), nil
}

func (s *usuarioServiceImpl) Update(ctx context.Context, req *dto.UpdateUsuarioRequest) (bool, error) {
	if req.ID == uuid.Nil {
		s.logger.Warn("ID do usuário é inválido")
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

	usuario, err := uow.Usuarios().FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Usuário não encontrado para o ID", zap.String("usuario_id", req.ID.String()))
			return false, ErrUsuarioNaoEncontrado
		}
		s.logger.Error("Erro ao buscar usuário para atualização", zap.String("usuario_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if usuario.IsDeleted {
		s.logger.Warn("Usuário já excluído", zap.String("usuario_id", req.ID.String()))
		return false, ErrUsuarioNaoEncontrado
	}

	req.ApplyTo(usuario)
	usuario.MarkUpdated(userID)

	if err := uow.Usuarios().Update(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUsuarioNaoEncontrado
		}
		s.logger.Error("Erro ao atualizar o usuário", zap.String("usuario_id", req.ID.String()), zap.Error(err))
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a atualização do usuário", zap.Error(err))
		return false, err
	}

	s.logger.Info("Usuário atualizado com sucesso", zap.String("usuario_id", req.ID.String()))
	return true, nil
}

// Delete soft-deletes the usuario together with its access records, all in
// one unit of work. Pedidos, enderecos and tarefas stay untouched; the
// database cascade only applies to physical deletes, which never happen here.
func (s *usuarioServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	usuarioID, err := parseID(id)
	if err != nil {
		s.logger.Warn("ID inválido ao excluir usuário", zap.String("id", id))
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

	usuario, err := uow.Usuarios().FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Usuário não encontrado para exclusão", zap.String("usuario_id", usuarioID.String()))
			return false, nil
		}
		s.logger.Error("Erro ao buscar usuário para exclusão", zap.String("usuario_id", usuarioID.String()), zap.Error(err))
		return false, err
	}
	if usuario.IsDeleted {
		s.logger.Warn("Usuário já excluído", zap.String("usuario_id", usuarioID.String()))
		return false, nil
	}

	if err := uow.Usuarios().SoftDelete(ctx, usuarioID, userID); err != nil {
		s.logger.Error("Erro ao excluir o usuário", zap.String("usuario_id", usuarioID.String()), zap.Error(err))
		return false, err
	}

	acessos, err := uow.Acessos().FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		s.logger.Error("Erro ao buscar acessos do usuário", zap.String("usuario_id", usuarioID.String()), zap.Error(err))
		return false, err
	}
	for i := range acessos {
		if err := uow.Acessos().SoftDelete(ctx, acessos[i].ID, userID); err != nil {
			s.logger.Error("Erro ao excluir acesso do usuário", zap.String("acesso_id", acessos[i].ID.String()), zap.Error(err))
			return false, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Erro ao confirmar a exclusão do usuário", zap.Error(err))
		return false, err
	}

	s.logger.Info("Usuário excluído com sucesso", zap.String("usuario_id", usuarioID.String()))
	return true, nil
}
