package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateGameID - returns a random identifier used to correlate a session in logs.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}

	return id.String(), nil
}
