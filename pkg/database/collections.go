package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	// Operators reference data
	operatorsCollection := GetCollection("operators")
	operatorsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "operatorcode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "licencenumber", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := operatorsCollection.Indexes().CreateMany(context.Background(), operatorsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
