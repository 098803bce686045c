package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// MonthKeyLayout é o formato da chave de mês calendário (ex.: 2024-07).
const MonthKeyLayout = "2006-01"

// Record aloca um valor para uma categoria dentro de um mês calendário.
// Espera-se um registro por par (categoria, mês); duplicatas não são
// deduplicadas pelo pipeline e distorcem os agregados se presentes.
type Record struct {
	Id       ulid.ULID `json:"id"`
	Category string    `json:"category" binding:"required"`
	Month    string    `json:"month" binding:"required"`
	Amount   float64   `json:"amount" binding:"required,gte=0"`
}

// MonthKeyOf devolve a chave de mês calendário de um instante.
func MonthKeyOf(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

func (r Record) MatchesMonth(t time.Time) bool {
	return r.Month == MonthKeyOf(t)
}

// IsWithinBudget verifica se o gasto informado cabe na alocação.
func (r Record) IsWithinBudget(spent float64) bool {
	return spent <= r.Amount
}

// Percentage retorna a porcentagem gasta da alocação.
func (r Record) Percentage(spent float64) float64 {
	if r.Amount == 0 {
		return 0
	}
	return (spent / r.Amount) * 100
}
