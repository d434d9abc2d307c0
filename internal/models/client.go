package models

import "time"

// Cliente sem login: identificado pelo CPF (chave natural) + telefone
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CPF   string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:11;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
