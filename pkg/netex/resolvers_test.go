package netex

import (
	"testing"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeIntervalsDeduplicates(t *testing.T) {
	products := []fares.Product{
		{Name: "Weekly A", Price: "10.00", Duration: "7"},
		{Name: "Monthly", Price: "30.00", Duration: "28"},
		{Name: "Weekly B", Price: "11.00", Duration: "7"},
	}

	intervals, err := resolveTimeIntervals(fares.TicketVariantMultiService, products)
	require.NoError(t, err)

	require.Len(t, intervals, 2)
	assert.Equal(t, TimeIntervalID("P7D"), intervals[0].ID)
	assert.Equal(t, TimeIntervalID("P28D"), intervals[1].ID)
	assert.Equal(t, "7 days", intervals[0].Name)
	assert.Equal(t, "28 days", intervals[1].Name)
}

func TestResolveTimeIntervalsGeoZoneFixed(t *testing.T) {
	products := []fares.Product{
		{Name: "Weekly", Price: "10.00", Duration: "7"},
	}

	intervals, err := resolveTimeIntervals(fares.TicketVariantGeoZone, products)
	require.NoError(t, err)

	require.Len(t, intervals, 1)
	assert.Equal(t, TimeIntervalID("P1D"), intervals[0].ID)
	assert.Equal(t, "1 day", intervals[0].Name)
}

func TestResolveTimeIntervalsAbsentWithoutDurations(t *testing.T) {
	products := []fares.Product{
		{Name: "Rover", Price: "5.00"},
	}

	intervals, err := resolveTimeIntervals(fares.TicketVariantMultiService, products)
	require.NoError(t, err)
	assert.Nil(t, intervals)
}

func TestResolveTimeIntervalsRejectsBadDuration(t *testing.T) {
	products := []fares.Product{
		{Name: "Broken", Price: "5.00", Duration: "soon"},
	}

	_, err := resolveTimeIntervals(fares.TicketVariantMultiService, products)
	assert.ErrorIs(t, err, fares.ErrInvalidTicketData)
}

func TestResolveFareProductsSharesAccessElement(t *testing.T) {
	ticket := multiServiceTicket()
	ticket.Products = append(ticket.Products, fares.Product{Name: "Monthly", Price: "30.00", Duration: "28"})

	fareProducts := resolveFareProducts(fares.TicketVariantMultiService, ticket)
	require.Len(t, fareProducts, 2)

	accessID := FareStructureElementID("access", VariantQualifier(fares.TicketVariantMultiService))
	for _, product := range fareProducts {
		require.NotNil(t, product.AccessRights)
		require.Len(t, product.AccessRights.AccessRightInProduct, 1)
		assert.Equal(t, accessID, product.AccessRights.AccessRightInProduct[0].FareStructureElementRef.Ref)
	}
}

func TestResolveSalesOfferPackagesReferenceProducts(t *testing.T) {
	ticket := geoZoneTicket()

	fareProducts := resolveFareProducts(fares.TicketVariantGeoZone, ticket)
	packages := resolveSalesOfferPackages(ticket)

	require.Len(t, packages, len(fareProducts))
	for i, pkg := range packages {
		require.NotNil(t, pkg.Elements)
		require.Len(t, pkg.Elements.SalesOfferPackageElement, 1)
		assert.Equal(t, fareProducts[i].ID, pkg.Elements.SalesOfferPackageElement[0].PreassignedFareProductRef.Ref)
	}
}

func TestResolveMultiServiceFareTableColumns(t *testing.T) {
	ticket := multiServiceTicket()

	table := resolveMultiServiceFareTable(ticket)

	require.NotNil(t, table.Columns)
	require.Len(t, table.Columns.FareTableColumn, 2)
	assert.Equal(t, "L1", table.Columns.FareTableColumn[0].Name)
	assert.Equal(t, "L2", table.Columns.FareTableColumn[1].Name)

	require.NotNil(t, table.Rows)
	require.Len(t, table.Rows.FareTableRow, 1)
	assert.Equal(t, "Weekly", table.Rows.FareTableRow[0].Name)

	require.NotNil(t, table.Cells)
	require.Len(t, table.Cells.Cell, 1)
	require.NotNil(t, table.Cells.Cell[0].TimeIntervalPrice)
	assert.Equal(t, "10.00", table.Cells.Cell[0].TimeIntervalPrice.Amount)
	assert.Equal(t, TimeIntervalID("P7D"), table.Cells.Cell[0].TimeIntervalPrice.TimeIntervalRef.Ref)
}
