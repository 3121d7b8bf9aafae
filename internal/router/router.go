package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-test-api/internal/database"
	"project-test-api/internal/handler"
	"project-test-api/internal/middleware"
	"project-test-api/internal/repository"
	"project-test-api/internal/service"
	"project-test-api/internal/unitofwork"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins string
}

// Setup wires repositories, services and handlers onto a gin engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics())

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "project-test-api"})
	})
	// Readiness follows the global connection so a background reconnect
	// flips the probe without a restart.
	r.GET("/ready", func(c *gin.Context) {
		if !database.IsConnected() {
			c.JSON(503, gin.H{"status": "not ready", "service": "project-test-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "project-test-api"})
	})

	// Shared-session repositories for reads; the unit-of-work factory opens
	// a transaction per mutating request.
	uowFactory := unitofwork.NewFactory(cfg.DB)
	usuarioRepo := repository.NewUsuarioRepository(cfg.DB)
	pedidoRepo := repository.NewPedidoRepository(cfg.DB)
	enderecoRepo := repository.NewEnderecoEntregaRepository(cfg.DB)
	tarefaRepo := repository.NewTarefaRepository(cfg.DB)

	usuarioService := service.NewUsuarioService(usuarioRepo, uowFactory, cfg.Logger)
	pedidoService := service.NewPedidoService(pedidoRepo, uowFactory, cfg.Logger)
	enderecoService := service.NewEnderecoEntregaService(enderecoRepo, uowFactory, cfg.Logger)
	tarefaService := service.NewTarefaService(tarefaRepo, uowFactory, cfg.Logger)

	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	pedidoHandler := handler.NewPedidoHandler(pedidoService)
	enderecoHandler := handler.NewEnderecoEntregaHandler(enderecoService)
	tarefaHandler := handler.NewTarefaHandler(tarefaService)

	api := r.Group(cfg.BasePath)
	api.Use(middleware.Auth(cfg.JWTSecret))

	usuarios := api.Group("/usuario")
	{
		usuarios.GET("", usuarioHandler.GetUsuarios)
		usuarios.GET("/:id", usuarioHandler.GetUsuarioByID)
		usuarios.POST("/create", usuarioHandler.CreateUsuario)
		usuarios.PUT("/:id", usuarioHandler.UpdateUsuario)
		usuarios.DELETE("/:id", usuarioHandler.DeleteUsuario)
	}

	pedidos := api.Group("/pedido")
	{
		pedidos.GET("", pedidoHandler.GetPedidos)
		pedidos.GET("/:id", pedidoHandler.GetPedidoByID)
		pedidos.GET("/usuario/:usuarioId", pedidoHandler.GetPedidosByUsuario)
		pedidos.POST("/create", pedidoHandler.CreatePedido)
		pedidos.PUT("/:id", pedidoHandler.UpdatePedido)
		pedidos.DELETE("/:id", pedidoHandler.DeletePedido)
	}

	enderecos := api.Group("/enderecoentrega")
	{
		enderecos.GET("", enderecoHandler.GetEnderecos)
		enderecos.GET("/:id", enderecoHandler.GetEnderecoByID)
		enderecos.GET("/usuario/:usuarioId", enderecoHandler.GetEnderecosByUsuario)
		enderecos.POST("/create", enderecoHandler.CreateEndereco)
		enderecos.PUT("/:id", enderecoHandler.UpdateEndereco)
		enderecos.DELETE("/:id", enderecoHandler.DeleteEndereco)
	}

	tarefas := api.Group("/tarefa")
	{
		tarefas.GET("", tarefaHandler.GetTarefas)
		tarefas.GET("/:id", tarefaHandler.GetTarefaByID)
		tarefas.GET("/usuario/:usuarioId", tarefaHandler.GetTarefasByUsuario)
		tarefas.POST("/create", tarefaHandler.CreateTarefa)
		tarefas.PUT("/:id", tarefaHandler.UpdateTarefa)
		tarefas.DELETE("/:id", tarefaHandler.DeleteTarefa)
	}

	return r
}
