package goalplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

// The plan document is persisted as a single human-readable JSON file, meant
// to live in the user's own storage (a dotfile, a private repo). Decoding is
// deliberately tolerant: a missing, partial or unparseable document merges
// against defaults instead of failing, so a broken file never locks the user
// out of their plan.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePlan reads a plan document from r. Missing fields are filled with
// defaults; an empty stream yields the default document; an unparseable
// stream is recovered from by falling back to the default document, with a
// warning logged.
func DecodePlan(r io.Reader) (*PlanDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read plan document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultPlan(), nil
	}
	doc := &PlanDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		log.Printf("warning: plan document is not parseable, starting from defaults: %v", err)
		return DefaultPlan(), nil
	}
	doc.Normalize()
	return doc, nil
}

// EncodePlan writes the document to w in its canonical indented form.
func EncodePlan(w io.Writer, doc *PlanDocument) error {
	if doc == nil {
		return fmt.Errorf("cannot encode a nil plan document")
	}
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode plan document: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
