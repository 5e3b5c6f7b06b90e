package fares

import (
	"context"
	"fmt"

	"github.com/faretex/faretex/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// GetOperator looks up the reference record for an operator code directly in
// the reference store.
func GetOperator(ctx context.Context, operatorCode string) (*Operator, error) {
	operatorsCollection := database.GetCollection("operators")

	var operator *Operator
	operatorsCollection.FindOne(ctx, bson.M{
		"operatorcode": operatorCode,
	}).Decode(&operator)

	if operator == nil {
		return nil, fmt.Errorf("%w: no reference data for operator %s", ErrInputUnavailable, operatorCode)
	}

	return operator, nil
}
