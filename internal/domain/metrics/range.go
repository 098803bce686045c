package metrics

import (
	"time"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

// DateRange delimita um período de dias calendário completos, inclusivo
// nas duas pontas.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Normalize ancora Start na meia-noite do seu dia e End no último
// instante do seu dia, antes de qualquer filtragem.
func (r DateRange) Normalize() DateRange {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, r.End.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

func (r DateRange) IsValid() bool {
	return !r.Start.After(r.End)
}

// Contains testa o intervalo fechado [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FilterByRange mantém os registros cuja data cai dentro do período.
// A operação é idempotente: filtrar um conjunto já filtrado pelo mesmo
// período devolve o mesmo conjunto.
func FilterByRange(records []transaction.Record, r DateRange) []transaction.Record {
	r = r.Normalize()
	filtered := make([]transaction.Record, 0, len(records))
	for _, record := range records {
		if r.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
