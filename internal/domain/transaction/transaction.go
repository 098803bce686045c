package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	TypeIncome  Types = "income"
	TypeExpense Types = "expense"
)

// Record é um fato imutável criado pela camada de entrada de dados.
// O pipeline de relatórios apenas lê e projeta, nunca altera.
type Record struct {
	Id          ulid.ULID `json:"id"`
	Type        Types     `json:"type" binding:"required,oneof=income expense"`
	Category    string    `json:"category" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji,omitempty"`
	Date        time.Time `json:"date" binding:"required"`
}

func (r Record) IsIncome() bool {
	return r.Type == TypeIncome
}

func (r Record) IsExpense() bool {
	return r.Type == TypeExpense
}
