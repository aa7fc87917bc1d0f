package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/transposer/constants"
	"github.com/jsphweid/transposer/model"
)

var ErrTooManyIDs = fmt.Errorf("can not look up more than %d sheets at once", constants.MaxBatchSheets)

var ErrInvalidItem = errors.New("invalid sheet item")

// ErrUnprocessedKeys means DynamoDB kept returning keys it did not get to.
var ErrUnprocessedKeys = errors.New("sheets left unprocessed after retries")

const (
	maxBatchAttempts = 3
	batchRetryDelay  = 20 * time.Millisecond
)

type SheetStore interface {
	SaveSheet(s model.Sheet) error
	GetSheets(ids []string) (map[string]model.Sheet, error)
}

type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// NewDynamoStoreFromEnv connects to the endpoint and table configured in
// the environment (DynamoDB local by default).
func NewDynamoStoreFromEnv() (*DynamoStore, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewDynamoStore(dynamodb.New(sess), constants.GetSheetsTable()), nil
}

func (d *DynamoStore) SaveSheet(s model.Sheet) error {
	_, err := d.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      sheetToItem(s),
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %w", err)
	}
	return nil
}

func (d *DynamoStore) GetSheets(ids []string) (map[string]model.Sheet, error) {
	if len(ids) > constants.MaxBatchSheets {
		return nil, ErrTooManyIDs
	}

	res := make(map[string]model.Sheet)
	if len(ids) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		})
	}

	request := map[string]*dynamodb.KeysAndAttributes{
		d.table: {Keys: keys},
	}
	for attempt := 0; ; attempt++ {
		out, err := d.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, fmt.Errorf("error from DynamoDB: %w", err)
		}

		for _, item := range out.Responses[d.table] {
			s, err := itemToSheet(item)
			if err != nil {
				return nil, err
			}
			res[s.ID] = s
		}

		unprocessed, ok := out.UnprocessedKeys[d.table]
		if !ok || len(unprocessed.Keys) == 0 {
			break
		}
		if attempt+1 >= maxBatchAttempts {
			return nil, fmt.Errorf("%w: %d left", ErrUnprocessedKeys, len(unprocessed.Keys))
		}
		time.Sleep(time.Duration(attempt+1) * batchRetryDelay)
		request = map[string]*dynamodb.KeysAndAttributes{d.table: unprocessed}
	}
	return res, nil
}

func sheetToItem(s model.Sheet) map[string]*dynamodb.AttributeValue {
	chords := make([]*dynamodb.AttributeValue, 0, len(s.Chords))
	for _, c := range s.Chords {
		chords = append(chords, &dynamodb.AttributeValue{S: aws.String(c)})
	}

	item := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(s.ID)},
		"Title":  {S: aws.String(s.Title)},
		"Text":   {S: aws.String(s.Text)},
		"Chords": {L: chords},
	}
	if s.Key != "" {
		item["Key"] = &dynamodb.AttributeValue{S: aws.String(s.Key)}
	}
	return item
}

func itemToSheet(item map[string]*dynamodb.AttributeValue) (model.Sheet, error) {
	var s model.Sheet
	pk, ok := item["PK"]
	if !ok || pk.S == nil {
		return s, fmt.Errorf("%w: missing PK", ErrInvalidItem)
	}
	s.ID = *pk.S
	s.Title = stringAttr(item, "Title")
	s.Text = stringAttr(item, "Text")
	s.Key = stringAttr(item, "Key")

	s.Chords = []string{}
	if chords, ok := item["Chords"]; ok {
		for _, c := range chords.L {
			if c.S != nil {
				s.Chords = append(s.Chords, *c.S)
			}
		}
	}
	return s, nil
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if v, ok := item[name]; ok && v.S != nil {
		return *v.S
	}
	return ""
}
