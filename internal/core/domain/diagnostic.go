package domain

// CompileError is one classified compiler error of a failed project.
// Fields are declared in JSON key order.
type CompileError struct {
	Class    string `json:"class,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Message  string `json:"error"`
	Type     string `json:"error_type"`
	File     string `json:"filename"`
	Package  string `json:"package,omitempty"`
}

// Analysis maps failed project ids to their classified errors.
type Analysis map[string][]CompileError

// Histogram counts errors per error type.
func (a Analysis) Histogram() map[string]int {
	h := make(map[string]int)
	for _, errs := range a {
		for _, e := range errs {
			h[e.Type]++
		}
	}
	return h
}
