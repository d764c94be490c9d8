package domain

// SeriesPoint is one labeled value of an ordered plot series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is an ordered sequence of labeled values handed to plotting
// collaborators. Order is meaningful and preserved by the exporter.
type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// Append adds a point and returns the series for chaining.
func (s *Series) Append(label string, value float64) *Series {
	s.Points = append(s.Points, SeriesPoint{Label: label, Value: value})
	return s
}
