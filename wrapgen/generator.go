package wrapgen

// Generator renders the extracted functions into the generated client file.
//
// The Go renderer lives in wrapgen/golang; Run only depends on this
// interface so the driver can be exercised with any renderer.
type Generator interface {
	// Generate returns the complete file for the sorted function collection.
	// It fails as a whole: either every function is rendered or none is.
	Generate(functions []FunctionInfo) ([]byte, error)
}
