package eval

import "math"

// builtin is one registered function: its arity and implementation.
type builtin struct {
	arity int
	fn    func(args []float64) float64
}

// The built-in registries are populated once here and never mutated
// afterward. They are consulted, never written, during evaluation, so
// concurrent callers need no locking.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var builtins = map[string]builtin{
	"sin":   {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"asin":  {1, func(a []float64) float64 { return math.Asin(a[0]) }},
	"acos":  {1, func(a []float64) float64 { return math.Acos(a[0]) }},
	"atan":  {1, func(a []float64) float64 { return math.Atan(a[0]) }},
	"sinh":  {1, func(a []float64) float64 { return math.Sinh(a[0]) }},
	"cosh":  {1, func(a []float64) float64 { return math.Cosh(a[0]) }},
	"tanh":  {1, func(a []float64) float64 { return math.Tanh(a[0]) }},
	"log":   {1, func(a []float64) float64 { return math.Log(a[0]) }},
	"log10": {1, func(a []float64) float64 { return math.Log10(a[0]) }},
	"sqrt":  {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"abs":   {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"exp":   {1, func(a []float64) float64 { return math.Exp(a[0]) }},
	"floor": {1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"ceil":  {1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"round": {1, func(a []float64) float64 { return math.Round(a[0]) }},

	"pow":   {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"atan2": {2, func(a []float64) float64 { return math.Atan2(a[0], a[1]) }},
	"mod":   {2, func(a []float64) float64 { return math.Mod(a[0], a[1]) }},
	"min":   {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"max":   {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
}

// Constant resolves a built-in constant by name.
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// BuiltinNames returns the registered function and constant names, for
// completion in the REPL.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins)+len(constants))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range constants {
		names = append(names, name)
	}
	return names
}
