package db

import (
	"strconv"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetChordMetadatas batch-fetches editorial metadata for chord symbols
// from the configured DynamoDB table, keyed by symbol. Symbols without an
// item are simply absent from the result.
func GetChordMetadatas(symbols []string) map[string]model.ChordMetadata {
	if len(symbols) > 10 {
		panic("Not supposed to pass in more than 10 symbols!")
	}

	res := make(map[string]model.ChordMetadata)

	if len(symbols) == 0 {
		return res
	}

	table := constants.GetMetadataTable()
	if table == "" {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, symbol := range symbols {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(symbol),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var m model.ChordMetadata
		if v["Difficulty"] != nil && v["Difficulty"].N != nil {
			difficulty, _ := strconv.ParseUint(*v["Difficulty"].N, 10, 32)
			m.Difficulty = uint(difficulty)
		}
		if v["DisplayName"] != nil && v["DisplayName"].S != nil {
			m.DisplayName = *v["DisplayName"].S
		}
		if v["SongExample"] != nil && v["SongExample"].S != nil {
			m.SongExample = *v["SongExample"].S
		}
		res[*v["PK"].S] = m
	}

	return res
}
