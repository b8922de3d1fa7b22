// Package analytics implements the fund scoring engine: statistics
// primitives, metrics synthesis, price prediction, environmental impact
// analysis and portfolio recommendation.
package analytics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidArgument is returned for malformed or out-of-range inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumericDegenerate is returned when a result is mathematically undefined.
	ErrNumericDegenerate = errors.New("numeric degenerate")
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the validate tags on v and maps failures to ErrInvalidArgument.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
}
