package idgen

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nrednav/cuid2"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"
)

const (
	// DefaultCUID2Length matches the 25 character cuid ids clients already hold.
	DefaultCUID2Length = 25

	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func newCUID2(length int) (Generator, error) {
	if length < 2 || length > 32 {
		return nil, fmt.Errorf("cuid2 length must be between 2 and 32, got %d", length)
	}
	next, err := cuid2.Init(cuid2.WithLength(length))
	if err != nil {
		return nil, fmt.Errorf("init cuid2: %w", err)
	}
	return Func(func() (string, error) { return next(), nil }), nil
}

func newUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("uuid: %w", err)
	}
	return id.String(), nil
}

// newULID uses the package's monotonic entropy, so ids made within the same
// millisecond still sort in creation order.
func newULID() (string, error) {
	return ulid.Make().String(), nil
}

func newKSUID() (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("ksuid: %w", err)
	}
	return id.String(), nil
}

func newNanoID(size int, alphabet string) (Generator, error) {
	if size < 1 || size > 255 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 255, got %d", size)
	}
	if len(alphabet) < 2 || len(alphabet) > 255 {
		return nil, fmt.Errorf("nanoid alphabet must have 2 to 255 characters, got %d", len(alphabet))
	}
	return Func(func() (string, error) {
		return gonanoid.Generate(alphabet, size)
	}), nil
}
