package analysis

// Detector enriches a target list. It may annotate entries or drop them.
type Detector interface {
	Detect(targets []Target) []Target
}

// DetectorChain runs detectors in sequence.
type DetectorChain struct {
	detectors []Detector
}

func NewDetectorChain(detectors ...Detector) *DetectorChain {
	return &DetectorChain{detectors: detectors}
}

func (dc *DetectorChain) Detect(targets []Target) []Target {
	result := targets
	for _, d := range dc.detectors {
		result = d.Detect(result)
	}
	return result
}
