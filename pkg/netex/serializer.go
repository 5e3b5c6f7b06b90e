package netex

import (
	"encoding/xml"
	"fmt"

	"github.com/faretex/faretex/pkg/fares"
)

// Serialize renders the completed document tree back into its wire form.
// Total and deterministic: the same tree always produces the same bytes.
// Subtrees set to nil by the assembler are omitted entirely rather than
// serialized empty.
func Serialize(doc *PublicationDelivery) ([]byte, error) {
	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fares.ErrSerializationFailure, err)
	}

	return append([]byte(xml.Header), output...), nil
}
