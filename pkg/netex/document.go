package netex

import "encoding/xml"

// Typed model of the NeTEx fares document shape this system emits. The
// skeleton templates unmarshal into this tree, the assembler fills it in and
// the serializer renders it back out. Optional subtrees are pointers - a nil
// pointer with omitempty is the explicit absent marker, the subtree is
// dropped from the output rather than serialized empty.

const DateTimeFormat = "2006-01-02T15:04:05Z07:00"

type PublicationDelivery struct {
	XMLName xml.Name `xml:"PublicationDelivery"`

	Version string `xml:"version,attr"`

	PublicationTimestamp string              `xml:"PublicationTimestamp"`
	ParticipantRef       string              `xml:"ParticipantRef"`
	PublicationRequest   *PublicationRequest `xml:"PublicationRequest,omitempty"`
	Description          string              `xml:"Description,omitempty"`

	DataObjects DataObjects `xml:"dataObjects"`
}

type PublicationRequest struct {
	RequestTimestamp string `xml:"RequestTimestamp"`
	ParticipantRef   string `xml:"ParticipantRef"`
	Description      string `xml:"Description,omitempty"`
}

type DataObjects struct {
	CompositeFrame *CompositeFrame `xml:"CompositeFrame"`
}

// Ref is a reference to another element, used for every cross-frame pointer.
// The ref attribute must be byte identical to the id attribute of its target.
type Ref struct {
	Version string `xml:"version,attr,omitempty"`
	Ref     string `xml:"ref,attr"`
}

type ValidBetween struct {
	FromDate string `xml:"FromDate"`
	ToDate   string `xml:"ToDate"`
}

type CompositeFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	ValidBetween *ValidBetween `xml:"ValidBetween,omitempty"`

	Name        string `xml:"Name,omitempty"`
	Description string `xml:"Description,omitempty"`

	TypeOfFrameRef *Ref        `xml:"TypeOfFrameRef,omitempty"`
	Codespaces     *Codespaces `xml:"codespaces,omitempty"`

	Frames *FramesInFrame `xml:"frames"`
}

type Codespaces struct {
	Codespace []Codespace `xml:"Codespace"`
}

type Codespace struct {
	ID          string `xml:"id,attr"`
	Xmlns       string `xml:"Xmlns"`
	XmlnsUrl    string `xml:"XmlnsUrl,omitempty"`
	Description string `xml:"Description,omitempty"`
}

// FramesInFrame holds the child frames of the composite frame. Field order
// here is serialization order; the fare frame list order is assembled per
// ticket variant.
type FramesInFrame struct {
	ResourceFrame        *ResourceFrame        `xml:"ResourceFrame,omitempty"`
	SiteFrame            *SiteFrame            `xml:"SiteFrame,omitempty"`
	ServiceCalendarFrame *ServiceCalendarFrame `xml:"ServiceCalendarFrame,omitempty"`
	ServiceFrame         *ServiceFrame         `xml:"ServiceFrame,omitempty"`
	FareFrames           []*FareFrame          `xml:"FareFrame"`
}

// Resource frame

type ResourceFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	TypeOfFrameRef *Ref           `xml:"TypeOfFrameRef,omitempty"`
	TypesOfValue   *TypesOfValue  `xml:"typesOfValue,omitempty"`
	Organisations  *Organisations `xml:"organisations,omitempty"`
}

type TypesOfValue struct {
	Branding *Branding `xml:"Branding,omitempty"`
}

type Branding struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`
	Name    string `xml:"Name,omitempty"`
	Url     string `xml:"Url,omitempty"`
}

type Organisations struct {
	Operator *OrganisationOperator `xml:"Operator,omitempty"`
}

type OrganisationOperator struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	PublicCode  string `xml:"PublicCode,omitempty"`
	Name        string `xml:"Name"`
	ShortName   string `xml:"ShortName,omitempty"`
	TradingName string `xml:"TradingName,omitempty"`

	ContactDetails                *ContactDetails `xml:"ContactDetails,omitempty"`
	CustomerServiceContactDetails *ContactDetails `xml:"CustomerServiceContactDetails,omitempty"`

	Address *Address `xml:"Address,omitempty"`

	PrimaryMode string `xml:"PrimaryMode,omitempty"`
}

type ContactDetails struct {
	Email string `xml:"Email,omitempty"`
	Phone string `xml:"Phone,omitempty"`
	Url   string `xml:"Url,omitempty"`
}

type Address struct {
	Street string `xml:"Street,omitempty"`
}

// Site and service calendar frames

type SiteFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	TypeOfFrameRef *Ref `xml:"TypeOfFrameRef,omitempty"`
}

type ServiceCalendarFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	TypeOfFrameRef  *Ref             `xml:"TypeOfFrameRef,omitempty"`
	ServiceCalendar *ServiceCalendar `xml:"ServiceCalendar,omitempty"`
}

type ServiceCalendar struct {
	ID       string `xml:"id,attr,omitempty"`
	FromDate string `xml:"FromDate"`
	ToDate   string `xml:"ToDate"`
}

// Service frame

type ServiceFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	TypeOfFrameRef *Ref   `xml:"TypeOfFrameRef,omitempty"`
	Lines          *Lines `xml:"lines,omitempty"`
}

type Lines struct {
	Line []Line `xml:"Line"`
}

type Line struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name"`
	Description string `xml:"Description,omitempty"`
	PublicCode  string `xml:"PublicCode,omitempty"`

	OperatorRef *Ref `xml:"OperatorRef,omitempty"`
}

// Fare frames

type FareFrame struct {
	Version string `xml:"version,attr"`
	ID      string `xml:"id,attr"`

	Name string `xml:"Name,omitempty"`

	TypeOfFrameRef *Ref           `xml:"TypeOfFrameRef,omitempty"`
	Prerequisites  *Prerequisites `xml:"prerequisites,omitempty"`

	FareZones *FareZones `xml:"fareZones,omitempty"`

	Tariffs            *Tariffs            `xml:"tariffs,omitempty"`
	FareProducts       *FareProducts       `xml:"fareProducts,omitempty"`
	SalesOfferPackages *SalesOfferPackages `xml:"salesOfferPackages,omitempty"`

	FareTables *FareTables `xml:"fareTables,omitempty"`
}

type Prerequisites struct {
	FareFrameRef []Ref `xml:"FareFrameRef"`
}

// Network fare frame content

type FareZones struct {
	FareZone []FareZone `xml:"FareZone"`
}

type FareZone struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name"`
	Description string `xml:"Description,omitempty"`

	Members     *ZoneMembers     `xml:"members,omitempty"`
	Projections *ZoneProjections `xml:"projections,omitempty"`
}

type ZoneMembers struct {
	ScheduledStopPointRef []ScheduledStopPointRef `xml:"ScheduledStopPointRef"`
}

type ScheduledStopPointRef struct {
	Version string `xml:"version,attr,omitempty"`
	Ref     string `xml:"ref,attr"`
	Name    string `xml:",chardata"`
}

type ZoneProjections struct {
	TopographicProjectionRef []Ref `xml:"TopographicProjectionRef"`
}

// Price fare frame content

type Tariffs struct {
	Tariff []Tariff `xml:"Tariff"`
}

type Tariff struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name string `xml:"Name,omitempty"`

	OperatorRef *Ref `xml:"OperatorRef,omitempty"`

	TimeIntervals         *TimeIntervals         `xml:"timeIntervals,omitempty"`
	FareStructureElements *FareStructureElements `xml:"fareStructureElements,omitempty"`
}

type TimeIntervals struct {
	TimeInterval []TimeInterval `xml:"TimeInterval"`
}

type TimeInterval struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name"`
	Description string `xml:"Description,omitempty"`
}

type FareStructureElements struct {
	FareStructureElement []FareStructureElement `xml:"FareStructureElement"`
}

type FareStructureElement struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name string `xml:"Name,omitempty"`

	TypeOfFareStructureElementRef *Ref `xml:"TypeOfFareStructureElementRef,omitempty"`

	TimeIntervalRefs *TimeIntervalRefs `xml:"timeIntervals,omitempty"`

	GenericParameterAssignment *GenericParameterAssignment `xml:"GenericParameterAssignment,omitempty"`
}

type TimeIntervalRefs struct {
	TimeIntervalRef []Ref `xml:"TimeIntervalRef"`
}

type GenericParameterAssignment struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`
	Order   string `xml:"order,attr,omitempty"`

	TypeOfAccessRightAssignmentRef *Ref `xml:"TypeOfAccessRightAssignmentRef,omitempty"`

	ValidityParameters *ValidityParameters `xml:"validityParameters,omitempty"`
}

type ValidityParameters struct {
	FareZoneRef []Ref `xml:"FareZoneRef,omitempty"`
	LineRef     []Ref `xml:"LineRef,omitempty"`
}

type FareProducts struct {
	PreassignedFareProduct []PreassignedFareProduct `xml:"PreassignedFareProduct"`
}

type PreassignedFareProduct struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name"`
	ProductType string `xml:"ProductType,omitempty"`

	Prices       *ProductPrices `xml:"prices,omitempty"`
	AccessRights *AccessRights  `xml:"accessRightsInProduct,omitempty"`
}

type ProductPrices struct {
	PreassignedFareProductPrice []ProductPrice `xml:"PreassignedFareProductPrice"`
}

type ProductPrice struct {
	ID     string `xml:"id,attr,omitempty"`
	Amount string `xml:"Amount"`
}

type AccessRights struct {
	AccessRightInProduct []AccessRightInProduct `xml:"AccessRightInProduct"`
}

type AccessRightInProduct struct {
	ID    string `xml:"id,attr,omitempty"`
	Order string `xml:"order,attr,omitempty"`

	FareStructureElementRef *Ref `xml:"FareStructureElementRef,omitempty"`
}

type SalesOfferPackages struct {
	SalesOfferPackage []SalesOfferPackage `xml:"SalesOfferPackage"`
}

type SalesOfferPackage struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name"`
	Description string `xml:"Description,omitempty"`

	Elements *SalesOfferPackageElements `xml:"salesOfferPackageElements,omitempty"`
}

type SalesOfferPackageElements struct {
	SalesOfferPackageElement []SalesOfferPackageElement `xml:"SalesOfferPackageElement"`
}

type SalesOfferPackageElement struct {
	ID    string `xml:"id,attr,omitempty"`
	Order string `xml:"order,attr,omitempty"`

	PreassignedFareProductRef *Ref `xml:"PreassignedFareProductRef,omitempty"`
}

// Fare table frame content

type FareTables struct {
	FareTable []FareTable `xml:"FareTable"`
}

type FareTable struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr"`

	Name        string `xml:"Name,omitempty"`
	Description string `xml:"Description,omitempty"`

	Columns *FareTableColumns `xml:"columns,omitempty"`
	Rows    *FareTableRows    `xml:"rows,omitempty"`
	Cells   *FareTableCells   `xml:"cells,omitempty"`
}

type FareTableColumns struct {
	FareTableColumn []FareTableColumn `xml:"FareTableColumn"`
}

type FareTableColumn struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"Name"`
}

type FareTableRows struct {
	FareTableRow []FareTableRow `xml:"FareTableRow"`
}

type FareTableRow struct {
	ID    string `xml:"id,attr"`
	Order string `xml:"order,attr,omitempty"`
	Name  string `xml:"Name"`
}

type FareTableCells struct {
	Cell []FareTableCell `xml:"Cell"`
}

type FareTableCell struct {
	ID string `xml:"id,attr,omitempty"`

	TimeIntervalPrice *TimeIntervalPrice `xml:"TimeIntervalPrice,omitempty"`

	ColumnRef *Ref `xml:"ColumnRef,omitempty"`
	RowRef    *Ref `xml:"RowRef,omitempty"`
}

type TimeIntervalPrice struct {
	Version string `xml:"version,attr,omitempty"`
	ID      string `xml:"id,attr,omitempty"`

	Amount string `xml:"Amount"`

	TimeIntervalRef *Ref `xml:"TimeIntervalRef,omitempty"`
}
