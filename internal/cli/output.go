package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles printing structured results in text or JSON
type Output struct {
	json bool
}

// NewOutput creates an output formatter
func NewOutput(asJSON bool) *Output {
	return &Output{json: asJSON}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %s\n", err)
		}
		return
	}
	fmt.Printf("%+v\n", data)
}
