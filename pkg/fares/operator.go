package fares

// Operator is the reference record for a bus operator, keyed by its National
// Operator Code. Externally owned and read only - the reference store is
// populated out of band.
type Operator struct {
	OperatorCode string `bson:"operatorcode"`

	LegalName   string `bson:"legalname"`
	TradingName string `bson:"tradingname"`

	LicenceNumber string `bson:"licencenumber"`
	TransportMode string `bson:"transportmode"`

	Website          string `bson:"website"`
	ContactEmail     string `bson:"contactemail"`
	FareEnquiryEmail string `bson:"fareenquiryemail"`
	PhoneNumber      string `bson:"phonenumber"`
	Address          string `bson:"address"`
}

// DisplayName prefers the trading name the public would recognise.
func (o *Operator) DisplayName() string {
	if o.TradingName != "" {
		return o.TradingName
	}

	return o.LegalName
}
