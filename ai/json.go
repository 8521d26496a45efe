package ai

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Weights{}

var featureByName = lo.Associate(lo.Range(int(MaxFeature)), func(i int) (string, Feature) {
	return Feature(i).String(), Feature(i)
})

// UnknownFeatureError reports a weight name that matches no Feature.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature %q", e.Name)
}

// ParseFeature is the inverse of Feature.String.
func ParseFeature(name string) (Feature, error) {
	f, ok := featureByName[name]
	if !ok {
		return 0, &UnknownFeatureError{Name: name}
	}
	return f, nil
}

// Map returns the nonzero coefficients keyed by feature name.
func (ws *Weights) Map() map[string]float64 {
	named := lo.MapValues(featureByName, func(f Feature, _ string) float64 { return ws[f] })
	return lo.OmitByValues(named, []float64{0})
}

// Override sets the named coefficients and leaves the others alone.
// Nothing changes if any name is unknown.
func (ws *Weights) Override(m map[string]float64) error {
	next := *ws
	for name, v := range m {
		f, err := ParseFeature(name)
		if err != nil {
			return err
		}
		next[f] = v
	}
	*ws = next
	return nil
}

func (ws *Weights) MarshalJSON() ([]byte, error) {
	return json.Marshal(ws.Map())
}

func (ws *Weights) UnmarshalJSON(bs []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(bs, &m); err != nil {
		return err
	}
	return ws.Override(m)
}

// ParseWeights decodes JSON weights on top of DefaultWeights.
func ParseWeights(s string) (Weights, error) {
	w := DefaultWeights
	if s == "" {
		return w, nil
	}
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return w, fmt.Errorf("parse weights: %w", err)
	}
	return w, nil
}
