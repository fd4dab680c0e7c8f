// Package narrative produces SAR narrative sections from case data, either
// through a generative model call or a deterministic template. Both origins
// meet the same ProducerOutput contract so downstream audit and compliance
// logic never needs to know which one ran.
package narrative

import (
	"context"

	"github.com/sells-group/sar-cli/internal/model"
)

// Origin identifies which producer variant generated a narrative.
type Origin string

const (
	OriginClaude   Origin = "claude"
	OriginTemplate Origin = "template"
)

// Producer generates the narrative sections for a case.
type Producer interface {
	Produce(ctx context.Context, rec *model.CaseRecord) (*model.ProducerOutput, error)
	Origin() Origin
}
