package netex

import (
	"testing"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/stretchr/testify/assert"
)

func TestFrameIDGrammar(t *testing.T) {
	assert.Equal(t,
		"epd:UK:NOCX:CompositeFrame_UK_PI_NETWORK_FARE_OFFER:network:op",
		FrameID("NOCX", FrameKindComposite, VariantQualifier(fares.TicketVariantGeoZone)))

	assert.Equal(t,
		"epd:UK:NOCX:ServiceFrame_UK_PI_NETWORK:services:op",
		FrameID("NOCX", FrameKindService, VariantQualifier(fares.TicketVariantMultiService)))
}

func TestFareProductIDGrammar(t *testing.T) {
	assert.Equal(t, "op:Pass@Weekly_adult", FareProductID("Weekly", "adult"))
	assert.Equal(t, "op:Pass@Weekly_adult-SOP", SalesOfferPackageID("Weekly", "adult"))
}
