package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/de-tools/failure-analyst/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidAnalysis marks a provider reply that could not be turned into a
// valid FailureAnalysis. The analyzer re-asks the model on this error and on
// nothing else.
var ErrInvalidAnalysis = errors.New("model produced an invalid analysis")

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

var validate = validator.New()

// parseAnalysis strips markdown code fences, decodes the reply and checks it
// against the FailureAnalysis constraints.
func parseAnalysis(raw string) (*domain.FailureAnalysis, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	var result domain.FailureAnalysis
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	if err := validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	return &result, nil
}
