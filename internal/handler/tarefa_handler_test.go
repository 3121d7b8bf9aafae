package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-test-api/internal/dto"
	"project-test-api/internal/response"
	"project-test-api/internal/service"
)

type mockTarefaService struct {
	GetAllFunc         func(ctx context.Context) ([]*dto.TarefaResponse, error)
	GetByIDFunc        func(ctx context.Context, id string) (*dto.TarefaResponse, error)
	GetByUsuarioIDFunc func(ctx context.Context, usuarioID string) ([]*dto.TarefaResponse, error)
	CreateFunc         func(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error)
	UpdateFunc         func(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error)
	DeleteFunc         func(ctx context.Context, id string) (bool, error)
}

func (m *mockTarefaService) GetAll(ctx context.Context) ([]*dto.TarefaResponse, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockTarefaService) GetByID(ctx context.Context, id string) (*dto.TarefaResponse, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTarefaService) GetByUsuarioID(ctx context.Context, usuarioID string) ([]*dto.TarefaResponse, error) {
	return m.GetByUsuarioIDFunc(ctx, usuarioID)
}

func (m *mockTarefaService) Create(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockTarefaService) Update(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error) {
	return m.UpdateFunc(ctx, req)
}

func (m *mockTarefaService) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}

func setupTarefaRouter(svc service.TarefaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTarefaHandler(svc)

	r := gin.New()
	grupo := r.Group("/api/tarefa")
	{
		grupo.GET("", h.GetTarefas)
		grupo.GET("/:id", h.GetTarefaByID)
		grupo.GET("/usuario/:usuarioId", h.GetTarefasByUsuario)
		grupo.POST("/create", h.CreateTarefa)
		grupo.PUT("/:id", h.UpdateTarefa)
		grupo.DELETE("/:id", h.DeleteTarefa)
	}
	return r
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateTarefaRetorna201(t *testing.T) {
	svc := &mockTarefaService{
		CreateFunc: func(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error) {
			return &dto.TarefaResponse{ID: uuid.New(), Titulo: req.Titulo}, nil
		},
	}
	r := setupTarefaRouter(svc)

	payload, _ := json.Marshal(map[string]interface{}{
		"titulo":    "Nova Tarefa",
		"usuarioId": uuid.NewString(),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tarefa/create", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body dto.TarefaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Nova Tarefa", body.Titulo)
	assert.NotEqual(t, uuid.Nil, body.ID)
}

func TestCreateTarefaCorpoInvalidoRetorna400(t *testing.T) {
	svc := &mockTarefaService{
		CreateFunc: func(ctx context.Context, req *dto.CreateTarefaRequest) (*dto.TarefaResponse, error) {
			t.Fatal("o serviço não deve ser chamado com corpo inválido")
			return nil, nil
		},
	}
	r := setupTarefaRouter(svc)

	// titulo ausente
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tarefa/create", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, response.ErrCodeValidation, body.Error.Code)
	assert.Equal(t, "Dados da tarefa inválidos.", body.Error.Message)
}

func TestGetTarefaByIDInvalidoRetorna400(t *testing.T) {
	svc := &mockTarefaService{
		GetByIDFunc: func(ctx context.Context, id string) (*dto.TarefaResponse, error) {
			return nil, response.NewAppError(response.ErrCodeValidation, "ID é inválido", "")
		},
	}
	r := setupTarefaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tarefa/invalid-guid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "ID é inválido", body.Error.Message)
}

func TestGetTarefaByIDNaoEncontradaRetorna404(t *testing.T) {
	svc := &mockTarefaService{
		GetByIDFunc: func(ctx context.Context, id string) (*dto.TarefaResponse, error) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tarefa não encontrada!", "")
		},
	}
	r := setupTarefaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tarefa/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "Tarefa não encontrada!", body.Error.Message)
}

func TestGetTarefasFalhaInternaRetorna500Generico(t *testing.T) {
	svc := &mockTarefaService{
		GetAllFunc: func(ctx context.Context) ([]*dto.TarefaResponse, error) {
			return nil, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
		},
	}
	r := setupTarefaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tarefa", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, response.ErrCodeInternal, body.Error.Code)
	// O detalhe interno nunca chega ao cliente.
	assert.Equal(t, "Erro ao buscar as tarefas.", body.Error.Message)
}

func TestUpdateTarefaIDDivergenteRetorna400(t *testing.T) {
	svc := &mockTarefaService{
		UpdateFunc: func(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error) {
			t.Fatal("o serviço não deve ser chamado com ids divergentes")
			return false, nil
		},
	}
	r := setupTarefaRouter(svc)

	payload, _ := json.Marshal(map[string]interface{}{"id": uuid.NewString()})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tarefa/"+uuid.NewString(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "ID do corpo não corresponde ao ID da URL.", body.Error.Message)
}

func TestUpdateTarefaRetorna204(t *testing.T) {
	id := uuid.New()
	svc := &mockTarefaService{
		UpdateFunc: func(ctx context.Context, req *dto.UpdateTarefaRequest) (bool, error) {
			assert.Equal(t, id, req.ID)
			return true, nil
		},
	}
	r := setupTarefaRouter(svc)

	payload, _ := json.Marshal(map[string]interface{}{"id": id.String(), "titulo": "Atualizado"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tarefa/"+id.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestDeleteTarefaRetorna204(t *testing.T) {
	svc := &mockTarefaService{
		DeleteFunc: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}
	r := setupTarefaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tarefa/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTarefaInexistenteRetorna404(t *testing.T) {
	svc := &mockTarefaService{
		DeleteFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	r := setupTarefaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tarefa/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "Tarefa não encontrada!", body.Error.Message)
}
