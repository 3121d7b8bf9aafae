package domain

// Usuario represents a user account
type Usuario struct {
	Entidade
	Nome  string `gorm:"column:nome;type:varchar(200);not null" json:"nome"`
	Email string `gorm:"column:email;type:varchar(200);uniqueIndex;not null" json:"email"`
	Senha string `gorm:"column:senha;type:varchar(200);not null" json:"-"`

	// Relations
	Acessos   []AcessoUsuario   `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"acessos,omitempty"`
	Pedidos   []Pedido          `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"pedidos,omitempty"`
	Enderecos []EnderecoEntrega `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"enderecos,omitempty"`
	Tarefas   []Tarefa          `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"tarefas,omitempty"`
}

// TableName specifies the table name for Usuario
func (Usuario) TableName() string {
	return "usuario"
}
