package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido represents an order placed by a user
type Pedido struct {
	Entidade
	NumeroPedido  string          `gorm:"column:numero_pedido;not null" json:"numeroPedido"`
	Descricao     string          `gorm:"column:descricao;type:varchar(200);not null" json:"descricao"`
	Valor         decimal.Decimal `gorm:"column:valor;type:decimal(18,2);not null" json:"valor"`
	DataEntrega   *time.Time      `gorm:"column:data_entrega" json:"dataEntrega,omitempty"`
	StatusEntrega string          `gorm:"column:status_entrega;type:varchar(100);not null" json:"statusEntrega"`
	UsuarioID     uuid.UUID       `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuarioId"`
}

// TableName specifies the table name for Pedido
func (Pedido) TableName() string {
	return "pedido"
}
