// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

type pathReport struct {
	types.MaterializeResult
	Reason string `json:"reason,omitempty"`
	Code   string `json:"code,omitempty"`
}

type graftReport struct {
	*types.GraftResult
	Results    []pathReport `json:"results"`
	DurationMS int64        `json:"durationMs"`
	Failed     int          `json:"failed"`
}

func report(result *types.GraftResult) graftReport {
	r := graftReport{
		GraftResult: result,
		Results:     make([]pathReport, 0, len(result.Results)),
		DurationMS:  result.Duration.Milliseconds(),
		Failed:      len(result.Failures()),
	}
	for _, res := range result.Results {
		pr := pathReport{MaterializeResult: res, Reason: res.Reason()}
		if res.Err != nil {
			pr.Code = string(errors.GetErrorCode(res.Err))
		}
		r.Results = append(r.Results, pr)
	}
	return r
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	if v, ok := result.(*types.GraftResult); ok {
		return r.encoder.Encode(report(v))
	}
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
