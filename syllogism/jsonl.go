package syllogism

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes the derivation trace as JSON Lines, one step per
// line, in recorded order.
func (d *Derivation) WriteJSONL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, step := range d.Steps {
		if err := enc.Encode(step); err != nil {
			return fmt.Errorf("encoding step %s: %w", step.ID, err)
		}
	}
	return bw.Flush()
}

// WriteJSONLFile writes the trace to the named file.
func (d *Derivation) WriteJSONLFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()

	return d.WriteJSONL(f)
}
