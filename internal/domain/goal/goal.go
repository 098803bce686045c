package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Record struct {
	Id            ulid.ULID      `json:"id"`
	Name          string         `json:"name" binding:"required"`
	TargetAmount  float64        `json:"targetAmount" binding:"required,gt=0"`
	Contributions []Contribution `json:"contributions"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type Contribution struct {
	Id     ulid.ULID `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// CurrentAmount soma as contribuições registradas para a meta.
func (r Record) CurrentAmount() float64 {
	var total float64
	for _, c := range r.Contributions {
		total += c.Amount
	}
	return total
}

// Progress retorna o progresso da meta como porcentagem, limitado a 100.
func (r Record) Progress() float64 {
	if r.TargetAmount <= 0 {
		return 0
	}
	progress := (r.CurrentAmount() / r.TargetAmount) * 100
	if progress > 100 {
		return 100
	}
	return progress
}
