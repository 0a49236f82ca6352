package entities

type PostureStatus string

const (
	PostureGood             PostureStatus = "good"
	PostureNeedsImprovement PostureStatus = "needs_improvement"
	PosturePoor             PostureStatus = "poor"
)

type BodyMeasurements struct {
	Shoulders float64 `json:"shoulders"`
	Chest     float64 `json:"chest"`
	Waist     float64 `json:"waist"`
	Hips      float64 `json:"hips"`
	Thighs    float64 `json:"thighs"`
	Arms      float64 `json:"arms"`
}

type Posture struct {
	Status      PostureStatus `json:"status"`
	Issues      []string      `json:"issues"`
	Corrections []string      `json:"corrections"`
}

type AnatomicalPoints struct {
	Detected   []string `json:"detected"`
	Confidence float64  `json:"confidence"`
}

// BodyComposition is the "analise_corporal" block of a body analysis. It is
// also what clients send back as the previous snapshot.
type BodyComposition struct {
	BodyFatPercentage float64          `json:"bodyFatPercentage"`
	LeanMass          float64          `json:"leanMass"`
	EstimatedBMI      float64          `json:"estimatedBMI"`
	Measurements      BodyMeasurements `json:"measurements"`
	Posture           Posture          `json:"posture"`
	AnatomicalPoints  AnatomicalPoints `json:"anatomicalPoints"`
}

// Evolution compares a body analysis against a previous snapshot. Measurement
// changes only carry the measurements the model reported a delta for.
type Evolution struct {
	WeightChange       float64            `json:"weightChange"`
	BodyFatChange      float64            `json:"bodyFatChange"`
	MeasurementChanges map[string]float64 `json:"measurementChanges"`
	ProgressNotes      []string           `json:"progressNotes"`
}
