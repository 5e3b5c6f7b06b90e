package netex

import (
	"fmt"
	"strconv"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/util"
	iso8601 "github.com/senseyeio/duration"
)

// Zone based tickets carry a single fixed validity interval as the fare is
// determined by the zone, not by the product duration.
const geoZoneDurationDays = 1

// resolveStopRefs maps the selected stops onto scheduled stop point
// references. Order must match the input stop order as the fare table column
// ordering depends on it.
func resolveStopRefs(stops []fares.Stop) []ScheduledStopPointRef {
	var refs []ScheduledStopPointRef

	for _, stop := range stops {
		refs = append(refs, ScheduledStopPointRef{
			Version: "any",
			Ref:     StopPointID(stop.AtcoCode),
			Name:    stop.Name,
		})
	}

	return refs
}

// resolveTopographicProjections maps each stop onto its NPTG locality
// projection, one to one with the stop list in the same order.
func resolveTopographicProjections(stops []fares.Stop) []Ref {
	var refs []Ref

	for _, stop := range stops {
		refs = append(refs, Ref{
			Version: "nptg:2.1",
			Ref:     TopographicPlaceID(stop.LocalityCode),
		})
	}

	return refs
}

// resolveLines maps the selected lines onto line elements for the service
// frame. Only the multi service variant selects lines.
func resolveLines(ticket *fares.TicketDescription) []Line {
	var lines []Line

	for _, selected := range ticket.Lines {
		lines = append(lines, Line{
			Version:     "1.0",
			ID:          LineID(ticket.OperatorCode, selected.Name),
			Name:        selected.Name,
			Description: selected.Description,
			PublicCode:  selected.Name,
			OperatorRef: &Ref{Version: "1.0", Ref: OperatorID(ticket.OperatorCode)},
		})
	}

	return lines
}

func durationToISO(days string) (string, error) {
	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: product duration %q is not a positive day count", fares.ErrInvalidTicketData, days)
	}

	return iso8601.Duration{D: n}.String(), nil
}

func intervalName(iso string) string {
	if iso == "P1D" {
		return "1 day"
	}

	// iso is always PnD here
	return fmt.Sprintf("%s days", iso[1:len(iso)-1])
}

// resolveTimeIntervals produces one interval per distinct product duration
// for multi service tickets, or the single fixed zone interval for zone based
// tickets. Deduplicated by duration value, first seen order. A nil result
// means time intervals are explicitly absent from the output.
func resolveTimeIntervals(variant fares.TicketVariant, products []fares.Product) ([]TimeInterval, error) {
	if variant.IsGeoZone() {
		iso := iso8601.Duration{D: geoZoneDurationDays}.String()

		return []TimeInterval{{
			Version:     "1.0",
			ID:          TimeIntervalID(iso),
			Name:        intervalName(iso),
			Description: iso,
		}}, nil
	}

	var isoDurations []string
	for _, product := range products {
		if product.Duration == "" {
			continue
		}

		iso, err := durationToISO(product.Duration)
		if err != nil {
			return nil, err
		}

		isoDurations = append(isoDurations, iso)
	}

	isoDurations = util.RemoveDuplicateStrings(isoDurations, nil)

	if len(isoDurations) == 0 {
		return nil, nil
	}

	var intervals []TimeInterval
	for _, iso := range isoDurations {
		intervals = append(intervals, TimeInterval{
			Version:     "1.0",
			ID:          TimeIntervalID(iso),
			Name:        intervalName(iso),
			Description: iso,
		})
	}

	return intervals, nil
}

// productIntervalRef returns the time interval identifier governing a
// product, or an empty string when the product has no interval.
func productIntervalRef(variant fares.TicketVariant, product fares.Product) string {
	if variant.IsGeoZone() {
		return TimeIntervalID(iso8601.Duration{D: geoZoneDurationDays}.String())
	}

	if product.Duration == "" {
		return ""
	}

	iso, err := durationToISO(product.Duration)
	if err != nil {
		return ""
	}

	return TimeIntervalID(iso)
}

// resolveFareStructureElements produces one structural element per fare
// determining dimension: access (zone or line membership), eligibility
// (passenger type) and travel validity (time intervals, when present).
func resolveFareStructureElements(variant fares.TicketVariant, ticket *fares.TicketDescription, intervals []TimeInterval) []FareStructureElement {
	qualifier := VariantQualifier(variant)

	access := FareStructureElement{
		Version: "1.0",
		ID:      FareStructureElementID("access", qualifier),
		Name:    "Available zones and lines",
		TypeOfFareStructureElementRef: &Ref{
			Version: "fxc:v1.0",
			Ref:     "fxc:access",
		},
		GenericParameterAssignment: &GenericParameterAssignment{
			Version: "1.0",
			ID:      FareStructureElementID("access", qualifier) + "@assignment",
			Order:   "1",
			TypeOfAccessRightAssignmentRef: &Ref{
				Version: "fxc:v1.0",
				Ref:     "fxc:can_access",
			},
			ValidityParameters: &ValidityParameters{},
		},
	}

	if variant.IsGeoZone() {
		access.GenericParameterAssignment.ValidityParameters.FareZoneRef = []Ref{
			{Version: "1.0", Ref: FareZoneID(ticket.ZoneName)},
		}
	} else {
		var lineRefs []Ref
		for _, line := range ticket.Lines {
			lineRefs = append(lineRefs, Ref{Version: "1.0", Ref: LineID(ticket.OperatorCode, line.Name)})
		}
		access.GenericParameterAssignment.ValidityParameters.LineRef = lineRefs
	}

	eligibility := FareStructureElement{
		Version: "1.0",
		ID:      FareStructureElementID("eligibility", qualifier),
		Name:    fmt.Sprintf("Eligible user type %s", ticket.PassengerType),
		TypeOfFareStructureElementRef: &Ref{
			Version: "fxc:v1.0",
			Ref:     "fxc:eligibility",
		},
	}

	elements := []FareStructureElement{access, eligibility}

	if len(intervals) > 0 {
		var intervalRefs []Ref
		for _, interval := range intervals {
			intervalRefs = append(intervalRefs, Ref{Version: "1.0", Ref: interval.ID})
		}

		elements = append(elements, FareStructureElement{
			Version: "1.0",
			ID:      FareStructureElementID("durations", qualifier),
			Name:    "Available validity periods",
			TypeOfFareStructureElementRef: &Ref{
				Version: "fxc:v1.0",
				Ref:     "fxc:travel_validity",
			},
			TimeIntervalRefs: &TimeIntervalRefs{TimeIntervalRef: intervalRefs},
		})
	}

	return elements
}

// resolveFareProducts produces one preassigned fare product per input
// product, in input order, each referencing the access fare structure
// element that governs it.
func resolveFareProducts(variant fares.TicketVariant, ticket *fares.TicketDescription) []PreassignedFareProduct {
	accessElementID := FareStructureElementID("access", VariantQualifier(variant))

	var fareProducts []PreassignedFareProduct
	for _, product := range ticket.Products {
		productID := FareProductID(product.Name, ticket.PassengerType)

		productType := "periodPass"
		if product.Duration == "" && variant.IsMultiService() {
			productType = "dayPass"
		}

		fareProducts = append(fareProducts, PreassignedFareProduct{
			Version:     "1.0",
			ID:          productID,
			Name:        product.Name,
			ProductType: productType,
			Prices: &ProductPrices{
				PreassignedFareProductPrice: []ProductPrice{{
					ID:     productID + "@price",
					Amount: product.Price,
				}},
			},
			AccessRights: &AccessRights{
				AccessRightInProduct: []AccessRightInProduct{{
					ID:                      productID + "@access",
					Order:                   "1",
					FareStructureElementRef: &Ref{Version: "1.0", Ref: accessElementID},
				}},
			},
		})
	}

	return fareProducts
}

// resolveSalesOfferPackages produces one package per product referencing the
// corresponding preassigned fare product by the identical identifier string.
func resolveSalesOfferPackages(ticket *fares.TicketDescription) []SalesOfferPackage {
	var packages []SalesOfferPackage
	for _, product := range ticket.Products {
		productID := FareProductID(product.Name, ticket.PassengerType)

		packages = append(packages, SalesOfferPackage{
			Version:     "1.0",
			ID:          SalesOfferPackageID(product.Name, ticket.PassengerType),
			Name:        product.Name,
			Description: fmt.Sprintf("%s - %s", product.Name, ticket.PassengerType),
			Elements: &SalesOfferPackageElements{
				SalesOfferPackageElement: []SalesOfferPackageElement{{
					ID:                        SalesOfferPackageID(product.Name, ticket.PassengerType) + "@element",
					Order:                     "1",
					PreassignedFareProductRef: &Ref{Version: "1.0", Ref: productID},
				}},
			},
		})
	}

	return packages
}

// resolveGeoZoneFareTable builds the zone based price table: one row per
// product in input order, a single column for the zone.
func resolveGeoZoneFareTable(ticket *fares.TicketDescription) FareTable {
	tableID := FareTableID(ticket.OperatorCode, fares.TicketVariantGeoZone)
	columnID := FareTableColumnID(tableID, ticket.ZoneName)

	table := FareTable{
		Version:     "1.0",
		ID:          tableID,
		Name:        fmt.Sprintf("%s fares", ticket.ZoneName),
		Description: fmt.Sprintf("Prices for the %s zone", ticket.ZoneName),
		Columns: &FareTableColumns{
			FareTableColumn: []FareTableColumn{{
				ID:   columnID,
				Name: ticket.ZoneName,
			}},
		},
		Rows:  &FareTableRows{},
		Cells: &FareTableCells{},
	}

	for i, product := range ticket.Products {
		productID := FareProductID(product.Name, ticket.PassengerType)
		rowID := FareTableRowID(tableID, productID)

		table.Rows.FareTableRow = append(table.Rows.FareTableRow, FareTableRow{
			ID:    rowID,
			Order: strconv.Itoa(i + 1),
			Name:  product.Name,
		})

		table.Cells.Cell = append(table.Cells.Cell, FareTableCell{
			ID: rowID + "@cell",
			TimeIntervalPrice: &TimeIntervalPrice{
				Version: "1.0",
				ID:      rowID + "@price",
				Amount:  product.Price,
				TimeIntervalRef: &Ref{
					Version: "1.0",
					Ref:     productIntervalRef(fares.TicketVariantGeoZone, product),
				},
			},
			ColumnRef: &Ref{Ref: columnID},
			RowRef:    &Ref{Ref: rowID},
		})
	}

	return table
}

// resolveMultiServiceFareTable builds the multi service price table: one row
// per product in input order, one column per selected line.
func resolveMultiServiceFareTable(ticket *fares.TicketDescription) FareTable {
	tableID := FareTableID(ticket.OperatorCode, fares.TicketVariantMultiService)

	table := FareTable{
		Version:     "1.0",
		ID:          tableID,
		Name:        fmt.Sprintf("%s fares", ticket.OperatorName),
		Description: "Prices across the selected services",
		Columns:     &FareTableColumns{},
		Rows:        &FareTableRows{},
		Cells:       &FareTableCells{},
	}

	for _, line := range ticket.Lines {
		table.Columns.FareTableColumn = append(table.Columns.FareTableColumn, FareTableColumn{
			ID:   FareTableColumnID(tableID, line.Name),
			Name: line.Name,
		})
	}

	for i, product := range ticket.Products {
		productID := FareProductID(product.Name, ticket.PassengerType)
		rowID := FareTableRowID(tableID, productID)

		table.Rows.FareTableRow = append(table.Rows.FareTableRow, FareTableRow{
			ID:    rowID,
			Order: strconv.Itoa(i + 1),
			Name:  product.Name,
		})

		price := &TimeIntervalPrice{
			Version: "1.0",
			ID:      rowID + "@price",
			Amount:  product.Price,
		}

		// Products without a fixed duration price the whole selection, so
		// they carry no interval reference
		if intervalRef := productIntervalRef(fares.TicketVariantMultiService, product); intervalRef != "" {
			price.TimeIntervalRef = &Ref{Version: "1.0", Ref: intervalRef}
		}

		table.Cells.Cell = append(table.Cells.Cell, FareTableCell{
			ID:                rowID + "@cell",
			TimeIntervalPrice: price,
			RowRef:            &Ref{Ref: rowID},
		})
	}

	return table
}
