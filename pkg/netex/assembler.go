package netex

import (
	"fmt"
	"time"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/jinzhu/copier"
)

// validityYears is how far the published offer extends beyond the
// publication instant.
const validityYears = 99

type generationRun struct {
	ticket   *fares.TicketDescription
	operator *fares.Operator
	variant  fares.TicketVariant

	// now is fixed once at generation start; every timestamp in the document
	// derives from this single instant
	now time.Time

	qualifier string
	doc       *PublicationDelivery
}

// Generate converts a validated ticket description plus operator reference
// data into a serialized NeTEx document. Generation is all or nothing: any
// resolver failure aborts with no partial document produced. Output is byte
// identical for identical inputs and injected instant.
func Generate(loader *TemplateLoader, ticket *fares.TicketDescription, operator *fares.Operator, now time.Time) ([]byte, error) {
	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	variant, err := ticket.Variant()
	if err != nil {
		return nil, err
	}

	skeleton, err := loader.Load(variant)
	if err != nil {
		return nil, err
	}

	// Each run mutates its own deep copy so the loaded skeleton stays
	// pristine and concurrent runs cannot alias state
	var doc PublicationDelivery
	if err := copier.CopyWithOption(&doc, skeleton, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: cloning skeleton: %s", fares.ErrTemplateMalformed, err)
	}

	run := &generationRun{
		ticket:    ticket,
		operator:  operator,
		variant:   variant,
		now:       now.UTC(),
		qualifier: VariantQualifier(variant),
		doc:       &doc,
	}

	if err := run.assemble(); err != nil {
		return nil, err
	}

	return Serialize(&doc)
}

// assemble runs the fixed generation pipeline. The order matters: later
// steps reference identifiers produced by earlier ones.
func (run *generationRun) assemble() error {
	run.stampPublication()
	run.updateCompositeFrame()
	run.updateResourceFrame()
	run.updateSiteFrame()
	run.updateServiceCalendarFrame()
	run.updateServiceFrame()

	networkFrame := run.buildNetworkFareFrame()

	priceFrame, err := run.buildPriceFareFrame(networkFrame)
	if err != nil {
		return err
	}

	fareTableFrame := run.buildFareTableFrame()

	fareFrames := []*FareFrame{}
	if networkFrame != nil {
		fareFrames = append(fareFrames, networkFrame)
	}
	fareFrames = append(fareFrames, priceFrame, fareTableFrame)

	run.doc.DataObjects.CompositeFrame.Frames.FareFrames = fareFrames

	return nil
}

func (run *generationRun) timestamp() string {
	return run.now.Format(DateTimeFormat)
}

func (run *generationRun) stampPublication() {
	doc := run.doc

	doc.PublicationTimestamp = run.timestamp()
	doc.ParticipantRef = run.ticket.OperatorCode

	if doc.PublicationRequest != nil {
		doc.PublicationRequest.RequestTimestamp = run.timestamp()
		doc.PublicationRequest.ParticipantRef = run.ticket.OperatorCode
	}

	doc.Description = fmt.Sprintf("%s fares for %s tickets", run.operator.DisplayName(), run.ticket.PassengerType)
}

func (run *generationRun) updateCompositeFrame() {
	frame := run.doc.DataObjects.CompositeFrame

	frame.ID = FrameID(run.ticket.OperatorCode, FrameKindComposite, run.qualifier)
	frame.Name = fmt.Sprintf("Fares for %s", run.operator.DisplayName())

	frame.ValidBetween = &ValidBetween{
		FromDate: run.timestamp(),
		ToDate:   run.now.AddDate(validityYears, 0, 0).Format(DateTimeFormat),
	}
}

func (run *generationRun) updateResourceFrame() {
	frame := run.doc.DataObjects.CompositeFrame.Frames.ResourceFrame

	frame.ID = FrameID(run.ticket.OperatorCode, FrameKindResource, run.qualifier)

	operator := run.operator

	if frame.TypesOfValue != nil && frame.TypesOfValue.Branding != nil {
		frame.TypesOfValue.Branding.Name = operator.DisplayName()
		frame.TypesOfValue.Branding.Url = operator.Website
	}

	frame.Organisations = &Organisations{
		Operator: &OrganisationOperator{
			Version:     "1.0",
			ID:          OperatorID(run.ticket.OperatorCode),
			PublicCode:  run.ticket.OperatorCode,
			Name:        operator.LegalName,
			ShortName:   operator.TradingName,
			TradingName: operator.TradingName,
			ContactDetails: &ContactDetails{
				Phone: operator.PhoneNumber,
				Url:   operator.Website,
			},
			CustomerServiceContactDetails: &ContactDetails{
				Email: operator.FareEnquiryEmail,
			},
			Address:     &Address{Street: operator.Address},
			PrimaryMode: operator.TransportMode,
		},
	}
}

func (run *generationRun) updateSiteFrame() {
	frame := run.doc.DataObjects.CompositeFrame.Frames.SiteFrame

	frame.ID = FrameID(run.ticket.OperatorCode, FrameKindSite, run.qualifier)
}

func (run *generationRun) updateServiceCalendarFrame() {
	frame := run.doc.DataObjects.CompositeFrame.Frames.ServiceCalendarFrame

	frame.ID = FrameID(run.ticket.OperatorCode, FrameKindServiceCalendar, run.qualifier)

	frame.ServiceCalendar = &ServiceCalendar{
		FromDate: run.now.Format("2006-01-02"),
		ToDate:   run.now.AddDate(validityYears, 0, 0).Format("2006-01-02"),
	}
}

// updateServiceFrame populates the line list for multi service tickets. For
// every other variant the frame is omitted entirely, never left empty.
func (run *generationRun) updateServiceFrame() {
	frames := run.doc.DataObjects.CompositeFrame.Frames

	if !run.variant.IsMultiService() {
		frames.ServiceFrame = nil
		return
	}

	if frames.ServiceFrame == nil {
		frames.ServiceFrame = &ServiceFrame{Version: "1.0"}
	}

	frames.ServiceFrame.ID = FrameID(run.ticket.OperatorCode, FrameKindService, run.qualifier)
	frames.ServiceFrame.Lines = &Lines{Line: resolveLines(run.ticket)}
}

// buildNetworkFareFrame returns the fare zone frame for zone based tickets
// and nil for every other variant.
func (run *generationRun) buildNetworkFareFrame() *FareFrame {
	if !run.variant.IsGeoZone() {
		return nil
	}

	ticket := run.ticket

	return &FareFrame{
		Version: "1.0",
		ID:      FrameID(ticket.OperatorCode, FrameKindFareNetwork, run.qualifier),
		Name:    fmt.Sprintf("%s fare zone", ticket.ZoneName),
		TypeOfFrameRef: &Ref{
			Version: "fxc:v1.0",
			Ref:     "fxc:UK:DFT:TypeOfFrame_UK_PI_FARE_NETWORK:FXCP",
		},
		FareZones: &FareZones{
			FareZone: []FareZone{{
				Version:     "1.0",
				ID:          FareZoneID(ticket.ZoneName),
				Name:        ticket.ZoneName,
				Description: fmt.Sprintf("%s fare zone", ticket.ZoneName),
				Members: &ZoneMembers{
					ScheduledStopPointRef: resolveStopRefs(ticket.Stops),
				},
				Projections: &ZoneProjections{
					TopographicProjectionRef: resolveTopographicProjections(ticket.Stops),
				},
			}},
		},
	}
}

// buildPriceFareFrame assembles the tariff, fare products and sales offer
// packages. Its prerequisite points at the network fare frame for zone based
// tickets and is explicitly absent for multi service tickets.
func (run *generationRun) buildPriceFareFrame(networkFrame *FareFrame) (*FareFrame, error) {
	ticket := run.ticket

	intervals, err := resolveTimeIntervals(run.variant, ticket.Products)
	if err != nil {
		return nil, err
	}

	tariff := Tariff{
		Version:     "1.0",
		ID:          TariffID(ticket.OperatorCode, run.variant),
		Name:        fmt.Sprintf("%s tariff", run.operator.DisplayName()),
		OperatorRef: &Ref{Version: "1.0", Ref: OperatorID(ticket.OperatorCode)},
		FareStructureElements: &FareStructureElements{
			FareStructureElement: resolveFareStructureElements(run.variant, ticket, intervals),
		},
	}

	if len(intervals) > 0 {
		tariff.TimeIntervals = &TimeIntervals{TimeInterval: intervals}
	}

	frame := &FareFrame{
		Version: "1.0",
		ID:      FrameID(ticket.OperatorCode, FrameKindFareProduct, run.qualifier),
		Name:    "Fare products and tariffs",
		TypeOfFrameRef: &Ref{
			Version: "fxc:v1.0",
			Ref:     "fxc:UK:DFT:TypeOfFrame_UK_PI_FARE_PRODUCT:FXCP",
		},
		Tariffs: &Tariffs{Tariff: []Tariff{tariff}},
		FareProducts: &FareProducts{
			PreassignedFareProduct: resolveFareProducts(run.variant, ticket),
		},
		SalesOfferPackages: &SalesOfferPackages{
			SalesOfferPackage: resolveSalesOfferPackages(ticket),
		},
	}

	if networkFrame != nil {
		frame.Prerequisites = &Prerequisites{
			FareFrameRef: []Ref{{Ref: networkFrame.ID}},
		}
	}

	return frame, nil
}

func (run *generationRun) buildFareTableFrame() *FareFrame {
	ticket := run.ticket

	var table FareTable
	if run.variant.IsGeoZone() {
		table = resolveGeoZoneFareTable(ticket)
	} else {
		table = resolveMultiServiceFareTable(ticket)
	}

	return &FareFrame{
		Version: "1.0",
		ID:      FrameID(ticket.OperatorCode, FrameKindFarePrice, run.qualifier),
		Name:    "Fare price tables",
		TypeOfFrameRef: &Ref{
			Version: "fxc:v1.0",
			Ref:     "fxc:UK:DFT:TypeOfFrame_UK_PI_FARE_PRICE:FXCP",
		},
		FareTables: &FareTables{FareTable: []FareTable{table}},
	}
}
