package directory

import (
	"context"
	"encoding/json"
)

// Directory is the external brewery listing service. Responses are relayed
// verbatim; only GetName decodes anything, and only the display name.
type Directory interface {
	GetByID(ctx context.Context, id string) (json.RawMessage, error)
	SearchByCity(ctx context.Context, city string) (json.RawMessage, error)
	SearchByName(ctx context.Context, name string) (json.RawMessage, error)
	SearchByType(ctx context.Context, breweryType string) (json.RawMessage, error)
	GetName(ctx context.Context, id string) (string, error)
}
