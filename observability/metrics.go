package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	mealsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutricao",
		Subsystem: "intake",
		Name:      "meals_recorded_total",
		Help:      "Number of meal entries persisted.",
	})
	measurementsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutricao",
		Subsystem: "body",
		Name:      "measurements_recorded_total",
		Help:      "Number of body measurements persisted.",
	})
	referenceLookups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutricao",
		Subsystem: "reference",
		Name:      "lookups_total",
		Help:      "Number of food reference table queries.",
	})
	referenceRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nutricao",
		Subsystem: "reference",
		Name:      "table_rows",
		Help:      "Rows currently loaded in the food reference table.",
	})
)

func init() {
	prometheus.MustRegister(mealsRecorded, measurementsRecorded, referenceLookups, referenceRows)
}

func MealRecorded()        { mealsRecorded.Inc() }
func MeasurementRecorded() { measurementsRecorded.Inc() }
func ReferenceLookup()     { referenceLookups.Inc() }

func SetReferenceRows(n int64) { referenceRows.Set(float64(n)) }
