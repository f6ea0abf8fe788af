package form

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	gerr "github.com/gemstore/analytics-manager/internal/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidateStruct is validation.ValidateStruct returning an InvalidArgument
// status with one BadRequest field violation per failed field.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	violations := []*errdetails.BadRequest_FieldViolation{}

	for _, rule := range rules {
		err := validation.ValidateStruct(structField, rule)
		if err == nil {
			continue
		}
		ve, ok := err.(validation.Errors)
		if !ok {
			return status.New(codes.Internal, err.Error()).Err()
		}
		for _, field := range sortedKeys(convertRepositoryErrors(ve)) {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: formatErrMsg(ve[field].Error()),
			})
		}
	}
	if len(violations) == 0 {
		return nil
	}

	msg := status.Convert(gerr.InvalidReportRequest).Message()
	st, err := status.New(codes.InvalidArgument, msg).WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return status.New(codes.Internal, err.Error()).Err()
	}

	return st.Err()
}

// FieldViolations extracts the BadRequest details of a validation error.
func FieldViolations(err error) []*errdetails.BadRequest_FieldViolation {
	var out []*errdetails.BadRequest_FieldViolation
	for _, d := range status.Convert(err).Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			out = append(out, br.GetFieldViolations()...)
		}
	}
	return out
}

func sortedKeys(ve validation.Errors) []string {
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}

func convertRepositoryErrors(ve validation.Errors) validation.Errors {
	for key, value := range ve {
		if st := status.Convert(value); st != nil && st.Code() == codes.NotFound {
			ve[key] = errors.New(st.Message())
		}
	}
	return ve
}
