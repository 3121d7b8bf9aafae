package domain

import "github.com/google/uuid"

// AcessoUsuario is the access-grant record attached to a user
type AcessoUsuario struct {
	Entidade
	UsuarioID uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuarioId"`
}

// TableName specifies the table name for AcessoUsuario
func (AcessoUsuario) TableName() string {
	return "acesso_usuario"
}
