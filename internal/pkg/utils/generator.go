package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateRecordID() string {
	return uuid.NewString()
}
