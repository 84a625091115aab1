package ratings

import (
	"math"
	"time"
)

const (
	MinValue = 1
	MaxValue = 5
)

// Rating: como máximo una por (OwnerID, RaterID). No se edita ni se retira.
type Rating struct {
	OwnerID   string
	RaterID   string
	Value     int
	PetID     string // opcional: desde qué publicación se calificó
	CreatedAt time.Time
}

func (r Rating) Valid() bool {
	return r.Value >= MinValue && r.Value <= MaxValue
}

type Summary struct {
	OwnerID string
	Average float64
	Count   int
}

// ComputeAverage descarta valores fuera de [1,5] y redondea a 1 decimal.
// Lista vacía (o sin valores válidos) => (0, 0).
func ComputeAverage(items []Rating) (float64, int) {
	sum, count := 0, 0
	for _, r := range items {
		if !r.Valid() {
			continue
		}
		sum += r.Value
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, count
}
