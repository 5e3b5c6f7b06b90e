package fares

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TicketDescription is the user submitted fare definition as stored in the
// submissions bucket. It is immutable once loaded for a generation run.
type TicketDescription struct {
	UUID string `json:"uuid"`

	OperatorCode string `json:"nocCode" validate:"required"`
	OperatorName string `json:"operatorName" validate:"required"`

	VariantTag    string `json:"type" validate:"required"`
	PassengerType string `json:"passengerType" validate:"required"`

	Products []Product `json:"products" validate:"required,min=1,dive"`

	// ZoneName and Stops are populated for the zone based variant only
	ZoneName string `json:"zoneName"`
	Stops    []Stop `json:"stops" validate:"dive"`

	// Lines is populated for the multi service variant only
	Lines []Line `json:"lines" validate:"dive"`

	SubmitterEmail string `json:"email" validate:"omitempty,email"`
}

type Product struct {
	Name  string `json:"productName" validate:"required"`
	Price string `json:"productPrice" validate:"required"`

	// Duration is the validity period in days, empty when the product has no
	// fixed duration
	Duration string `json:"productDuration" validate:"omitempty,number"`
}

type Stop struct {
	AtcoCode string `json:"atcoCode" validate:"required"`
	Name     string `json:"stopName"`

	// NPTG locality the stop projects onto
	LocalityCode string `json:"localityCode"`
	LocalityName string `json:"localityName"`
}

type Line struct {
	Name        string `json:"lineName" validate:"required"`
	Description string `json:"description"`
}

// ParseTicketDescription decodes and validates a submitted ticket definition.
// Any schema violating or logically inconsistent input maps to
// ErrInvalidTicketData.
func ParseTicketDescription(data []byte) (*TicketDescription, error) {
	var ticket TicketDescription

	if err := json.Unmarshal(data, &ticket); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTicketData, err)
	}

	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (t *TicketDescription) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTicketData, err)
	}

	variant, err := t.Variant()
	if err != nil {
		return err
	}

	switch variant {
	case TicketVariantGeoZone:
		if t.ZoneName == "" {
			return fmt.Errorf("%w: zone based ticket has no zone name", ErrInvalidTicketData)
		}
		if len(t.Stops) == 0 {
			return fmt.Errorf("%w: zone based ticket has no stops", ErrInvalidTicketData)
		}
		if len(t.Lines) > 0 {
			return fmt.Errorf("%w: zone based ticket must not select lines", ErrInvalidTicketData)
		}
	case TicketVariantMultiService:
		if len(t.Lines) == 0 {
			return fmt.Errorf("%w: multi service ticket has no lines", ErrInvalidTicketData)
		}
		if len(t.Stops) > 0 {
			return fmt.Errorf("%w: multi service ticket must not select stops", ErrInvalidTicketData)
		}
	}

	return nil
}

func (t *TicketDescription) Variant() (TicketVariant, error) {
	return ClassifyVariant(t.VariantTag)
}
