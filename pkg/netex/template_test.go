package netex

import (
	"testing"
	"testing/fstest"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateLoaderParsesBothVariants(t *testing.T) {
	loader := NewTemplateLoader()

	for _, variant := range []fares.TicketVariant{fares.TicketVariantGeoZone, fares.TicketVariantMultiService} {
		skeleton, err := loader.Load(variant)
		require.NoError(t, err)

		require.NotNil(t, skeleton.DataObjects.CompositeFrame)
		require.NotNil(t, skeleton.DataObjects.CompositeFrame.Frames)
		assert.NotNil(t, skeleton.DataObjects.CompositeFrame.Frames.ResourceFrame)
		assert.NotNil(t, skeleton.DataObjects.CompositeFrame.Frames.SiteFrame)
		assert.NotNil(t, skeleton.DataObjects.CompositeFrame.Frames.ServiceCalendarFrame)
	}

	// the service frame only exists in the multi service skeleton
	geoZone, err := loader.Load(fares.TicketVariantGeoZone)
	require.NoError(t, err)
	assert.Nil(t, geoZone.DataObjects.CompositeFrame.Frames.ServiceFrame)

	multiService, err := loader.Load(fares.TicketVariantMultiService)
	require.NoError(t, err)
	assert.NotNil(t, multiService.DataObjects.CompositeFrame.Frames.ServiceFrame)
}

func TestTemplateLoaderMissingTemplate(t *testing.T) {
	loader := &TemplateLoader{fsys: fstest.MapFS{}}

	_, err := loader.Load(fares.TicketVariantGeoZone)
	assert.ErrorIs(t, err, fares.ErrTemplateUnavailable)
}

func TestTemplateLoaderMalformedTemplate(t *testing.T) {
	loader := &TemplateLoader{fsys: fstest.MapFS{
		"netex_geozone.xml": &fstest.MapFile{Data: []byte("<PublicationDelivery><unclosed>")},
	}}

	_, err := loader.Load(fares.TicketVariantGeoZone)
	assert.ErrorIs(t, err, fares.ErrTemplateMalformed)
}

func TestTemplateLoaderMissingCompositeFrame(t *testing.T) {
	loader := &TemplateLoader{fsys: fstest.MapFS{
		"netex_geozone.xml": &fstest.MapFile{Data: []byte("<PublicationDelivery><dataObjects/></PublicationDelivery>")},
	}}

	_, err := loader.Load(fares.TicketVariantGeoZone)
	assert.ErrorIs(t, err, fares.ErrTemplateMalformed)
}

func TestTemplateLoaderMissingStaticFrame(t *testing.T) {
	skeletons := map[string]string{
		"resource frame": `<PublicationDelivery><dataObjects><CompositeFrame><frames>
			<SiteFrame/><ServiceCalendarFrame/>
		</frames></CompositeFrame></dataObjects></PublicationDelivery>`,
		"site frame": `<PublicationDelivery><dataObjects><CompositeFrame><frames>
			<ResourceFrame/><ServiceCalendarFrame/>
		</frames></CompositeFrame></dataObjects></PublicationDelivery>`,
		"service calendar frame": `<PublicationDelivery><dataObjects><CompositeFrame><frames>
			<ResourceFrame/><SiteFrame/>
		</frames></CompositeFrame></dataObjects></PublicationDelivery>`,
	}

	for name, skeleton := range skeletons {
		t.Run(name, func(t *testing.T) {
			loader := &TemplateLoader{fsys: fstest.MapFS{
				"netex_geozone.xml": &fstest.MapFile{Data: []byte(skeleton)},
			}}

			_, err := loader.Load(fares.TicketVariantGeoZone)
			assert.ErrorIs(t, err, fares.ErrTemplateMalformed)
		})
	}
}

func TestLoadDoesNotShareState(t *testing.T) {
	loader := NewTemplateLoader()

	first, err := loader.Load(fares.TicketVariantGeoZone)
	require.NoError(t, err)

	first.DataObjects.CompositeFrame.ID = "mutated"

	second, err := loader.Load(fares.TicketVariantGeoZone)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.DataObjects.CompositeFrame.ID)
}
