package netex

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

var testOperator = &fares.Operator{
	OperatorCode:     "TEST",
	LegalName:        "Test Buses Limited",
	TradingName:      "Test Buses",
	LicenceNumber:    "PB0000001",
	TransportMode:    "bus",
	Website:          "https://testbuses.example.com",
	FareEnquiryEmail: "fares@testbuses.example.com",
	PhoneNumber:      "0123 456 7890",
	Address:          "1 Bus Depot Lane",
}

func geoZoneTicket() *fares.TicketDescription {
	return &fares.TicketDescription{
		OperatorCode:  "TEST",
		OperatorName:  "Test Buses",
		VariantTag:    "GeoZone",
		PassengerType: "adult",
		ZoneName:      "Town Centre",
		Products: []fares.Product{
			{Name: "Weekly", Price: "10.00"},
		},
		Stops: []fares.Stop{
			{AtcoCode: "490000001", Name: "High Street", LocalityCode: "E0034964", LocalityName: "Town Centre"},
		},
	}
}

func multiServiceTicket() *fares.TicketDescription {
	return &fares.TicketDescription{
		OperatorCode:  "TEST",
		OperatorName:  "Test Buses",
		VariantTag:    "MultiService",
		PassengerType: "adult",
		Products: []fares.Product{
			{Name: "Weekly", Price: "10.00", Duration: "7"},
		},
		Lines: []fares.Line{
			{Name: "L1"},
			{Name: "L2"},
		},
	}
}

func generateDocument(t *testing.T, ticket *fares.TicketDescription) (*PublicationDelivery, []byte) {
	t.Helper()

	output, err := Generate(NewTemplateLoader(), ticket, testOperator, testTime)
	require.NoError(t, err)

	var doc PublicationDelivery
	require.NoError(t, xml.Unmarshal(output, &doc))
	require.NotNil(t, doc.DataObjects.CompositeFrame)
	require.NotNil(t, doc.DataObjects.CompositeFrame.Frames)

	return &doc, output
}

func TestGenerateGeoZoneFrameSet(t *testing.T) {
	doc, _ := generateDocument(t, geoZoneTicket())
	frames := doc.DataObjects.CompositeFrame.Frames

	assert.Nil(t, frames.ServiceFrame, "zone based ticket must not emit a service frame")

	require.Len(t, frames.FareFrames, 3)
	assert.Contains(t, frames.FareFrames[0].ID, "FareFrame_UK_PI_FARE_NETWORK")
	assert.Contains(t, frames.FareFrames[1].ID, "FareFrame_UK_PI_FARE_PRODUCT")
	assert.Contains(t, frames.FareFrames[2].ID, "FareFrame_UK_PI_FARE_PRICE")
}

func TestGenerateGeoZoneFareZone(t *testing.T) {
	doc, _ := generateDocument(t, geoZoneTicket())
	networkFrame := doc.DataObjects.CompositeFrame.Frames.FareFrames[0]

	require.NotNil(t, networkFrame.FareZones)
	require.Len(t, networkFrame.FareZones.FareZone, 1)

	zone := networkFrame.FareZones.FareZone[0]
	assert.Equal(t, "Town Centre", zone.Name)

	require.NotNil(t, zone.Members)
	require.Len(t, zone.Members.ScheduledStopPointRef, 1)
	assert.Equal(t, StopPointID("490000001"), zone.Members.ScheduledStopPointRef[0].Ref)

	require.NotNil(t, zone.Projections)
	assert.Len(t, zone.Projections.TopographicProjectionRef, 1)
}

func TestGenerateGeoZonePrerequisite(t *testing.T) {
	doc, _ := generateDocument(t, geoZoneTicket())
	frames := doc.DataObjects.CompositeFrame.Frames

	priceFrame := frames.FareFrames[1]
	require.NotNil(t, priceFrame.Prerequisites)
	require.Len(t, priceFrame.Prerequisites.FareFrameRef, 1)
	assert.Equal(t, frames.FareFrames[0].ID, priceFrame.Prerequisites.FareFrameRef[0].Ref)
}

func TestGenerateMultiServiceFrameSet(t *testing.T) {
	doc, _ := generateDocument(t, multiServiceTicket())
	frames := doc.DataObjects.CompositeFrame.Frames

	require.NotNil(t, frames.ServiceFrame)
	require.NotNil(t, frames.ServiceFrame.Lines)
	require.Len(t, frames.ServiceFrame.Lines.Line, 2)
	assert.Equal(t, "L1", frames.ServiceFrame.Lines.Line[0].Name)
	assert.Equal(t, "L2", frames.ServiceFrame.Lines.Line[1].Name)

	require.Len(t, frames.FareFrames, 2)
	assert.Contains(t, frames.FareFrames[0].ID, "FareFrame_UK_PI_FARE_PRODUCT")
	assert.Contains(t, frames.FareFrames[1].ID, "FareFrame_UK_PI_FARE_PRICE")

	// multi service tickets have no network fare frame to reference
	assert.Nil(t, frames.FareFrames[0].Prerequisites)
}

func TestGenerateMultiServiceTimeIntervals(t *testing.T) {
	doc, _ := generateDocument(t, multiServiceTicket())
	priceFrame := doc.DataObjects.CompositeFrame.Frames.FareFrames[0]

	require.NotNil(t, priceFrame.Tariffs)
	require.Len(t, priceFrame.Tariffs.Tariff, 1)

	tariff := priceFrame.Tariffs.Tariff[0]
	require.NotNil(t, tariff.TimeIntervals)
	require.Len(t, tariff.TimeIntervals.TimeInterval, 1)
	assert.Equal(t, TimeIntervalID("P7D"), tariff.TimeIntervals.TimeInterval[0].ID)
}

func TestGenerateMultiServiceWithoutDurations(t *testing.T) {
	ticket := multiServiceTicket()
	ticket.Products = []fares.Product{{Name: "Weekly", Price: "10.00"}}

	doc, _ := generateDocument(t, ticket)
	priceFrame := doc.DataObjects.CompositeFrame.Frames.FareFrames[0]

	require.NotNil(t, priceFrame.Tariffs)
	assert.Nil(t, priceFrame.Tariffs.Tariff[0].TimeIntervals, "time intervals must be explicitly absent")
}

func TestGenerateUnknownVariant(t *testing.T) {
	ticket := geoZoneTicket()
	ticket.VariantTag = "Unknown"

	output, err := Generate(NewTemplateLoader(), ticket, testOperator, testTime)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, fares.ErrInvalidTicketData)
}

func TestGenerateIdempotent(t *testing.T) {
	for _, ticket := range []*fares.TicketDescription{geoZoneTicket(), multiServiceTicket()} {
		first, err := Generate(NewTemplateLoader(), ticket, testOperator, testTime)
		require.NoError(t, err)

		second, err := Generate(NewTemplateLoader(), ticket, testOperator, testTime)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestGenerateStopOrderPreserved(t *testing.T) {
	ticket := geoZoneTicket()
	ticket.Stops = []fares.Stop{
		{AtcoCode: "490000003", Name: "Third", LocalityCode: "E3"},
		{AtcoCode: "490000001", Name: "First", LocalityCode: "E1"},
		{AtcoCode: "490000002", Name: "Second", LocalityCode: "E2"},
	}

	doc, _ := generateDocument(t, ticket)
	zone := doc.DataObjects.CompositeFrame.Frames.FareFrames[0].FareZones.FareZone[0]

	var memberRefs []string
	for _, member := range zone.Members.ScheduledStopPointRef {
		memberRefs = append(memberRefs, member.Ref)
	}
	assert.Equal(t, []string{
		StopPointID("490000003"),
		StopPointID("490000001"),
		StopPointID("490000002"),
	}, memberRefs)

	require.Len(t, zone.Projections.TopographicProjectionRef, 3)
	assert.Equal(t, TopographicPlaceID("E3"), zone.Projections.TopographicProjectionRef[0].Ref)
	assert.Equal(t, TopographicPlaceID("E1"), zone.Projections.TopographicProjectionRef[1].Ref)
	assert.Equal(t, TopographicPlaceID("E2"), zone.Projections.TopographicProjectionRef[2].Ref)
}

func TestGenerateProductRowOrderPreserved(t *testing.T) {
	ticket := geoZoneTicket()
	ticket.Products = []fares.Product{
		{Name: "Monthly", Price: "30.00"},
		{Name: "Daily", Price: "3.00"},
		{Name: "Weekly", Price: "10.00"},
	}

	doc, _ := generateDocument(t, ticket)
	tableFrame := doc.DataObjects.CompositeFrame.Frames.FareFrames[2]

	require.NotNil(t, tableFrame.FareTables)
	require.Len(t, tableFrame.FareTables.FareTable, 1)

	rows := tableFrame.FareTables.FareTable[0].Rows.FareTableRow
	require.Len(t, rows, 3)
	assert.Equal(t, "Monthly", rows[0].Name)
	assert.Equal(t, "Daily", rows[1].Name)
	assert.Equal(t, "Weekly", rows[2].Name)
}

func TestGenerateSingleTimestamp(t *testing.T) {
	_, output := generateDocument(t, geoZoneTicket())

	expected := testTime.Format(DateTimeFormat)
	assert.True(t, strings.Contains(string(output), expected))

	var doc PublicationDelivery
	require.NoError(t, xml.Unmarshal(output, &doc))
	assert.Equal(t, expected, doc.PublicationTimestamp)
	assert.Equal(t, expected, doc.PublicationRequest.RequestTimestamp)
	assert.Equal(t, expected, doc.DataObjects.CompositeFrame.ValidBetween.FromDate)
	assert.Equal(t, testTime.AddDate(99, 0, 0).Format(DateTimeFormat), doc.DataObjects.CompositeFrame.ValidBetween.ToDate)
}

// collectIdentifiers walks the generated tree and gathers declared
// identifiers and the references pointing at them.
func collectIdentifiers(doc *PublicationDelivery) (declared map[string]bool, refs []string) {
	declared = map[string]bool{}
	frames := doc.DataObjects.CompositeFrame.Frames

	if frames.ResourceFrame != nil && frames.ResourceFrame.Organisations != nil && frames.ResourceFrame.Organisations.Operator != nil {
		declared[frames.ResourceFrame.Organisations.Operator.ID] = true
	}

	if frames.ServiceFrame != nil && frames.ServiceFrame.Lines != nil {
		for _, line := range frames.ServiceFrame.Lines.Line {
			declared[line.ID] = true
			if line.OperatorRef != nil {
				refs = append(refs, line.OperatorRef.Ref)
			}
		}
	}

	for _, frame := range frames.FareFrames {
		declared[frame.ID] = true

		if frame.Prerequisites != nil {
			for _, prerequisite := range frame.Prerequisites.FareFrameRef {
				refs = append(refs, prerequisite.Ref)
			}
		}

		if frame.FareZones != nil {
			for _, zone := range frame.FareZones.FareZone {
				declared[zone.ID] = true
			}
		}

		if frame.Tariffs != nil {
			for _, tariff := range frame.Tariffs.Tariff {
				declared[tariff.ID] = true

				if tariff.OperatorRef != nil {
					refs = append(refs, tariff.OperatorRef.Ref)
				}

				if tariff.TimeIntervals != nil {
					for _, interval := range tariff.TimeIntervals.TimeInterval {
						declared[interval.ID] = true
					}
				}

				if tariff.FareStructureElements != nil {
					for _, element := range tariff.FareStructureElements.FareStructureElement {
						declared[element.ID] = true

						if element.TimeIntervalRefs != nil {
							for _, ref := range element.TimeIntervalRefs.TimeIntervalRef {
								refs = append(refs, ref.Ref)
							}
						}

						if element.GenericParameterAssignment != nil && element.GenericParameterAssignment.ValidityParameters != nil {
							for _, ref := range element.GenericParameterAssignment.ValidityParameters.FareZoneRef {
								refs = append(refs, ref.Ref)
							}
							for _, ref := range element.GenericParameterAssignment.ValidityParameters.LineRef {
								refs = append(refs, ref.Ref)
							}
						}
					}
				}
			}
		}

		if frame.FareProducts != nil {
			for _, product := range frame.FareProducts.PreassignedFareProduct {
				declared[product.ID] = true

				if product.AccessRights != nil {
					for _, accessRight := range product.AccessRights.AccessRightInProduct {
						if accessRight.FareStructureElementRef != nil {
							refs = append(refs, accessRight.FareStructureElementRef.Ref)
						}
					}
				}
			}
		}

		if frame.SalesOfferPackages != nil {
			for _, pkg := range frame.SalesOfferPackages.SalesOfferPackage {
				declared[pkg.ID] = true

				if pkg.Elements != nil {
					for _, element := range pkg.Elements.SalesOfferPackageElement {
						if element.PreassignedFareProductRef != nil {
							refs = append(refs, element.PreassignedFareProductRef.Ref)
						}
					}
				}
			}
		}

		if frame.FareTables != nil {
			for _, table := range frame.FareTables.FareTable {
				declared[table.ID] = true

				if table.Columns != nil {
					for _, column := range table.Columns.FareTableColumn {
						declared[column.ID] = true
					}
				}
				if table.Rows != nil {
					for _, row := range table.Rows.FareTableRow {
						declared[row.ID] = true
					}
				}
				if table.Cells != nil {
					for _, cell := range table.Cells.Cell {
						if cell.ColumnRef != nil {
							refs = append(refs, cell.ColumnRef.Ref)
						}
						if cell.RowRef != nil {
							refs = append(refs, cell.RowRef.Ref)
						}
						if cell.TimeIntervalPrice != nil && cell.TimeIntervalPrice.TimeIntervalRef != nil {
							refs = append(refs, cell.TimeIntervalPrice.TimeIntervalRef.Ref)
						}
					}
				}
			}
		}
	}

	return declared, refs
}

func TestGenerateCrossReferenceIntegrity(t *testing.T) {
	for _, ticket := range []*fares.TicketDescription{geoZoneTicket(), multiServiceTicket()} {
		doc, _ := generateDocument(t, ticket)

		declared, refs := collectIdentifiers(doc)
		require.NotEmpty(t, refs)

		for _, ref := range refs {
			assert.True(t, declared[ref], "reference %q does not match any declared identifier (variant %s)", ref, ticket.VariantTag)
		}
	}
}
