package client

import (
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// resourceAs narrows a factory-resolved resource to the expected concrete
// type.
func resourceAs[T ledgerly.Resource](resource ledgerly.Resource) (T, error) {
	typed, ok := resource.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: got %T", ledgerly.ErrUnexpectedKind, resource)
	}

	return typed, nil
}

// collectionFrom narrows a list response to a collection.
func collectionFrom(resource ledgerly.Resource) (*ledgerly.Collection, error) {
	return resourceAs[*ledgerly.Collection](resource)
}
