package model

// Rect is a view frame in device points.
//
// Frames come straight from the introspection bridge and are untrusted:
// zero and negative dimensions are carried through unchanged so that
// downstream classifiers can treat them as findings rather than losing them
// at the decode boundary.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}
