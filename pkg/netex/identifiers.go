package netex

import (
	"fmt"

	"github.com/faretex/faretex/pkg/fares"
)

// FrameKind enumerates the frame identifier segments of the NeTEx UK profile.
type FrameKind string

const (
	FrameKindComposite       FrameKind = "CompositeFrame_UK_PI_NETWORK_FARE_OFFER"
	FrameKindResource        FrameKind = "ResourceFrame_UK_PI_COMMON"
	FrameKindSite            FrameKind = "SiteFrame_UK_PI_STOP"
	FrameKindServiceCalendar FrameKind = "ServiceCalendarFrame_UK_PI_CALENDAR"
	FrameKindService         FrameKind = "ServiceFrame_UK_PI_NETWORK"
	FrameKindFareNetwork     FrameKind = "FareFrame_UK_PI_FARE_NETWORK"
	FrameKindFareProduct     FrameKind = "FareFrame_UK_PI_FARE_PRODUCT"
	FrameKindFarePrice       FrameKind = "FareFrame_UK_PI_FARE_PRICE"
)

// FrameID is the single source of truth for frame identifiers. Every frame
// declaration and every cross-frame reference must be built through this
// function with the same arguments so the strings can never drift apart.
func FrameID(operatorCode string, kind FrameKind, qualifier string) string {
	return fmt.Sprintf("epd:UK:%s:%s:%s:op", operatorCode, kind, qualifier)
}

// VariantQualifier is the frame identifier qualifier for a ticket variant.
func VariantQualifier(variant fares.TicketVariant) string {
	if variant.IsMultiService() {
		return "services"
	}

	return "network"
}

// FareProductID builds the deterministic preassigned fare product identifier
// shared by the product declaration, its sales offer package and the fare
// table rows that price it.
func FareProductID(productName string, passengerType string) string {
	return fmt.Sprintf("op:Pass@%s_%s", productName, passengerType)
}

func SalesOfferPackageID(productName string, passengerType string) string {
	return fmt.Sprintf("%s-SOP", FareProductID(productName, passengerType))
}

func FareZoneID(zoneName string) string {
	return fmt.Sprintf("op:%s", zoneName)
}

func StopPointID(atcoCode string) string {
	return fmt.Sprintf("atco:%s", atcoCode)
}

func TopographicPlaceID(localityCode string) string {
	return fmt.Sprintf("nptg:%s", localityCode)
}

func LineID(operatorCode string, lineName string) string {
	return fmt.Sprintf("op:%s:Line:%s", operatorCode, lineName)
}

func TimeIntervalID(isoDuration string) string {
	return fmt.Sprintf("op:Tariff@%s", isoDuration)
}

func TariffID(operatorCode string, variant fares.TicketVariant) string {
	return fmt.Sprintf("op:Tariff@%s@%s", operatorCode, VariantQualifier(variant))
}

func FareStructureElementID(concern string, qualifier string) string {
	return fmt.Sprintf("op:Tariff@%s@%s", qualifier, concern)
}

func FareTableID(operatorCode string, variant fares.TicketVariant) string {
	return fmt.Sprintf("op:%s@%s-fareTable", operatorCode, VariantQualifier(variant))
}

func FareTableColumnID(tableID string, columnName string) string {
	return fmt.Sprintf("%s@c:%s", tableID, columnName)
}

func FareTableRowID(tableID string, productID string) string {
	return fmt.Sprintf("%s@r:%s", tableID, productID)
}

func OperatorID(operatorCode string) string {
	return fmt.Sprintf("noc:%s", operatorCode)
}
