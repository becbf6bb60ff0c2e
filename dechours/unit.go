package dechours

// Unit identifies a unit of time a temporal amount can be expressed in.
type Unit = string

var (
	UnitHours        Unit = "hours"
	UnitMinutes      Unit = "minutes"
	UnitDecimalHours Unit = "decimal-hours"
)

// TemporalAmount is a quantity of time expressed in one or more units.
// DecimalHours implements it with a single decimal-hours unit, and From
// accepts any implementation that reports hours and minutes.
type TemporalAmount interface {
	Get(unit Unit) (int64, error)
	Units() []Unit
}
