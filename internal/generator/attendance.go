package generator

import (
	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/pkg/dateutil"
)

var (
	departments = []string{"HR", "Finance", "Engineering", "Sales", "Support"}

	weekdayStatuses = []string{domain.StatusPresent, domain.StatusAbsent, domain.StatusLate, domain.StatusWFH}
	weekdayWeights  = []float64{0.85, 0.05, 0.05, 0.05}

	weekendStatuses = []string{domain.StatusAbsent, domain.StatusWFH}
	weekendWeights  = []float64{0.7, 0.3}
)

const (
	weekendRowChance = 0.05
	checkInMinute    = 9 * 60
	checkOutMinute   = 17*60 + 30
)

// AttendanceGenerator emits one row per employee per working day, plus the
// occasional weekend row.
type AttendanceGenerator struct {
	base
	config domain.AttendanceConfig
}

// NewAttendanceGenerator seeds a generator from its config
func NewAttendanceGenerator(config domain.AttendanceConfig) *AttendanceGenerator {
	return &AttendanceGenerator{base: newBase(ScenarioAttendance, config.Seed), config: config}
}

func (g *AttendanceGenerator) Generate() (dataset.Table, error) {
	days := dateutil.DateRange(g.config.StartDate, g.config.EndDate)
	records := make([]domain.AttendanceRecord, 0, g.config.NumEmployees*len(days))

	for empID := 1; empID <= g.config.NumEmployees; empID++ {
		dept := Choice(g.rng, departments)

		for _, d := range days {
			var status string
			if dateutil.IsWeekend(d) {
				if !g.rng.Chance(weekendRowChance) {
					continue
				}
				status = WeightedChoice(g.rng, weekendStatuses, weekendWeights)
			} else {
				status = WeightedChoice(g.rng, weekdayStatuses, weekdayWeights)
			}

			checkIn, checkOut := g.sampleTimes(status)
			records = append(records, domain.AttendanceRecord{
				EmployeeID: empID,
				Department: dept,
				Date:       d,
				Status:     status,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
			})
		}
	}
	return finish(&g.base, records)
}

// sampleTimes returns clock times for a status; absent days have none.
func (g *AttendanceGenerator) sampleTimes(status string) (*string, *string) {
	if status == domain.StatusAbsent {
		return nil, nil
	}

	var inDelta int
	if status == domain.StatusLate {
		inDelta = g.rng.IntBetween(16, 60)
	} else {
		inDelta = g.rng.IntBetween(-30, 30)
	}
	outDelta := g.rng.IntBetween(-15, 120)

	in := dateutil.ClockTime(checkInMinute + inDelta)
	out := dateutil.ClockTime(checkOutMinute + outDelta)
	return &in, &out
}
