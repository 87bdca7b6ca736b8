package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/mediatr/mediator"
)

// Validatable is implemented by requests with rules struct tags cannot
// express. Return a FieldError, or several joined with errors.Join, to name
// the offending members.
type Validatable interface {
	Validate() error
}

// FieldError is a validation failure attached to request members.
type FieldError struct {
	Members []string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidationError is returned when a request fails validation. The request
// handler is not called.
type ValidationError struct {
	RequestName string
	RequestType reflect.Type
	Failures    []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ")
}

func validation(validate *validator.Validate) mediator.PipelineBehavior {
	return func(ctx context.Context, request any, next mediator.NextFunc) (any, error) {
		if err := validateRequest(validate, request); err != nil {
			return nil, err
		}
		return next(ctx)
	}
}

func streamValidation(validate *validator.Validate) mediator.StreamPipelineBehavior {
	return func(ctx context.Context, request any, next mediator.StreamNextFunc) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			if err := validateRequest(validate, request); err != nil {
				yield(nil, err)
				return
			}
			for item, err := range next(ctx) {
				if !yield(item, err) || err != nil {
					return
				}
			}
		}
	}
}

func validateRequest(validate *validator.Validate, request any) error {
	var failures []*FieldError
	if err := validate.Struct(request); err != nil {
		var fieldErrs validator.ValidationErrors
		var invalid *validator.InvalidValidationError
		switch {
		case errors.As(err, &fieldErrs):
			for _, fe := range fieldErrs {
				failures = append(failures, &FieldError{
					Members: []string{memberName(fe)},
					Message: tagMessage(fe),
				})
			}
		case errors.As(err, &invalid):
			// Not a struct; only Validate applies.
		default:
			return err
		}
	}
	if v, ok := request.(Validatable); ok {
		failures = append(failures, customFailures(v.Validate())...)
	}
	if len(failures) == 0 {
		return nil
	}

	name := mediator.RequestName(request)
	messages := make([]string, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, fmt.Sprintf("Validation failed for '%s' members: '%s' with the error: '%s'.",
			name, strings.Join(f.Members, ","), f.Message))
	}
	return &ValidationError{
		RequestName: name,
		RequestType: reflect.TypeOf(request),
		Failures:    messages,
	}
}

func customFailures(err error) []*FieldError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*FieldError
		for _, inner := range joined.Unwrap() {
			out = append(out, customFailures(inner)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return []*FieldError{fe}
	}
	return []*FieldError{{Message: err.Error()}}
}

// memberName drops the request type from the namespace so nested fields read
// as Author.Email.
func memberName(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.StructNamespace(), "."); ok {
		return rest
	}
	return fe.StructField()
}

func tagMessage(fe validator.FieldError) string {
	field := memberName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s.", field, fe.Param())
	case "len":
		return fmt.Sprintf("The %s field must have a length of %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s].", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", field)
	default:
		return fmt.Sprintf("The %s field failed the '%s' rule.", field, fe.Tag())
	}
}
