package constants

import "os"

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetSheetsTable() string {
	return getEnv("SHEETS_TABLE", "transposer-sheets")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMO_ENDPOINT", "http://localhost:8000")
}

func GetRegion() string {
	return getEnv("AWS_REGION", "localhost")
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

// DynamoDB BatchGetItem allows more, but sheets are looked up a page at a time
const MaxBatchSheets = 10

// C4 = 60
const DefaultOctave = 4

const TicksPerQuarter = 480

const BeatsPerChord = 4
