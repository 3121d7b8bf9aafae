package domain

import "github.com/google/uuid"

// EnderecoEntrega represents a delivery address attached to a user
type EnderecoEntrega struct {
	Entidade
	CEP         string    `gorm:"column:cep;type:varchar(10);not null" json:"cep"`
	Rua         string    `gorm:"column:rua;type:varchar(200);not null" json:"rua"`
	Numero      *string   `gorm:"column:numero;type:varchar(50)" json:"numero,omitempty"`
	Bairro      string    `gorm:"column:bairro;type:varchar(200);not null" json:"bairro"`
	Complemento string    `gorm:"column:complemento;type:varchar(200);not null" json:"complemento"`
	Cidade      string    `gorm:"column:cidade;type:varchar(200);not null" json:"cidade"`
	Estado      string    `gorm:"column:estado;type:varchar(200);not null" json:"estado"`
	UsuarioID   uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuarioId"`
}

// TableName specifies the table name for EnderecoEntrega
func (EnderecoEntrega) TableName() string {
	return "endereco_entrega"
}
