package core

import (
	"fmt"
	"io"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by the generator.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// Int64Param builds an integer parameter entry from an int64.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating point parameter entry.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// BoolParam builds a boolean parameter entry.
func BoolParam(key, label string, v bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(v)}
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// WriteTo prints the snapshot as an indented key/value listing.
func (s ParameterSnapshot) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, g := range s.Groups {
		n, err := fmt.Fprintf(w, "%s\n", g.Name)
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, p := range g.Params {
			n, err := fmt.Fprintf(w, "  %-28s %s\n", p.Key, p.Value)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// ParameterControl describes a parameter the HUD can step with +/- buttons.
type ParameterControl struct {
	Key    string
	Label  string
	Type   ParamType
	Step   float64
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}
