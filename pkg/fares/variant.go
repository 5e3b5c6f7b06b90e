package fares

import "fmt"

type TicketVariant string

const (
	TicketVariantGeoZone      TicketVariant = "GeoZone"
	TicketVariantMultiService TicketVariant = "MultiService"
)

// ClassifyVariant maps a user supplied variant tag onto a known TicketVariant.
// An unrecognised tag is a hard error, never a silent default.
func ClassifyVariant(tag string) (TicketVariant, error) {
	switch TicketVariant(tag) {
	case TicketVariantGeoZone:
		return TicketVariantGeoZone, nil
	case TicketVariantMultiService:
		return TicketVariantMultiService, nil
	default:
		return "", fmt.Errorf("%w: unrecognised ticket variant %q", ErrInvalidTicketData, tag)
	}
}

func (v TicketVariant) IsGeoZone() bool {
	return v == TicketVariantGeoZone
}

func (v TicketVariant) IsMultiService() bool {
	return v == TicketVariantMultiService
}
