package output

import (
	"context"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Output defines the interface for reconciliation result destinations.
type Output interface {
	Write(ctx context.Context, r model.Result) error
	Close() error
}
