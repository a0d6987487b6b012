package question

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NormalizeBank fills nil options, trims types and validates a bank.
// Names are kept verbatim.
// Duplicate ids are rejected so that id lookups are unambiguous.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	bank.Title = strings.TrimSpace(bank.Title)

	questions := make([]Question, 0, len(bank.Questions))
	seenIDs := map[int]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}

		q.Type = Type(strings.TrimSpace(string(q.Type)))
		if q.Options == nil {
			q.Options = []string{}
		}
		collectStructIssues(collector, prefix, q)
		if q.Type == ShortAnswer && len(q.Options) > 0 {
			collector.add(prefix+".options", "only multiple choice questions may have options")
		}
		questions = append(questions, q)
	}
	bank.Questions = questions

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

func collectStructIssues(collector *issueCollector, prefix string, q Question) {
	err := structValidator.Struct(q)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		collector.add(prefix, err.Error())
		return
	}
	for _, fieldErr := range fieldErrs {
		collector.add(prefix+"."+fieldErr.Field(), describeRule(fieldErr))
	}
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("unknown value %q (expected one of: %s)", fmt.Sprint(fieldErr.Value()), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s rule", fieldErr.Tag())
	}
}
