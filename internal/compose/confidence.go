package compose

import "math"

// Weights distributes evidence sources over the fused event
// confidence. They sum to 1.
type Weights struct {
	VerbClass     float32 `yaml:"verb_class"`
	Arc           float32 `yaml:"arc"`
	Decomposition float32 `yaml:"decomposition"`
	Binding       float32 `yaml:"binding"`
}

// DefaultWeights returns the standard evidence weighting
func DefaultWeights() Weights {
	return Weights{
		VerbClass:     0.30,
		Arc:           0.20,
		Decomposition: 0.25,
		Binding:       0.25,
	}
}

// Calculator fuses per-stage confidences into event and sentence
// scores
type Calculator struct {
	weights Weights
}

// NewCalculator creates a calculator with the given weights
func NewCalculator(w Weights) *Calculator {
	return &Calculator{weights: w}
}

// floor keeps zero scores from collapsing the geometric mean
const confidenceFloor = 0.01

func clamp(c float32) float64 {
	if c < confidenceFloor {
		return confidenceFloor
	}
	if c > 1 {
		return 1
	}
	return float64(c)
}

// EventConfidence fuses the four evidence channels with a weighted
// geometric mean: a weak channel drags the score down harder than an
// arithmetic mean would
func (c *Calculator) EventConfidence(verbClass, arc, decomposition, binding float32) float32 {
	sum := float64(c.weights.VerbClass)*math.Log(clamp(verbClass)) +
		float64(c.weights.Arc)*math.Log(clamp(arc)) +
		float64(c.weights.Decomposition)*math.Log(clamp(decomposition)) +
		float64(c.weights.Binding)*math.Log(clamp(binding))
	return float32(math.Exp(sum))
}

// Overall is the geometric mean over per-event confidences
func (c *Calculator) Overall(events []float32) float32 {
	if len(events) == 0 {
		return 0
	}
	var sum float64
	for _, e := range events {
		sum += math.Log(clamp(e))
	}
	return float32(math.Exp(sum / float64(len(events))))
}

// UnboundPenalty deducts a fixed amount per unbound entity, floored at
// zero
func (c *Calculator) UnboundPenalty(confidence float32, unbound int) float32 {
	penalized := confidence - 0.1*float32(unbound)
	if penalized < 0 {
		return 0
	}
	return penalized
}

// AgreementBoost raises confidence when independent evidence sources
// agree, capped at 1
func (c *Calculator) AgreementBoost(confidence float32, sources int) float32 {
	switch {
	case sources >= 3:
		confidence *= 1.10
	case sources == 2:
		confidence *= 1.05
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
