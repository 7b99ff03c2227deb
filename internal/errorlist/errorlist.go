// Bounded list of errors, to report several configuration errors at once.
package errorlist

import (
	"fmt"
	"strings"
)

var maxErrors = 8

type List struct {
	errors  []error
	message string
}

type joinedErrors interface {
	Unwrap() []error
}

func New(message string) *List {
	return &List{message: message}
}

func (list List) Error() string {
	switch len(list.errors) {
	case 0:
		return list.message
	case 1:
		return fmt.Sprintf("%s: %s", list.message, list.errors[0])
	}
	msgs := make([]string, len(list.errors))
	for i, err := range list.errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %d errors: %s", list.message, len(list.errors), strings.Join(msgs, "; "))
}

func (list List) Unwrap() []error {
	return list.errors
}

// Append a single error to the list
//
// Returns false when list is full. Caller should stop validating then.
// Panics if error wraps multiple errors. Use Extend() for joined errors.
func (list *List) Append(err error) bool {
	if _, ok := err.(joinedErrors); ok {
		panic("errorlist: cannot append aggregated error")
	}
	if err != nil {
		list.errors = append(list.errors, err)
	}
	return list.Len() < maxErrors
}

// Extend list with wrapped errors.
//
// Return nil if list has free slots.
// Return err as is if it's a single error.
// Return self if list is full.
func (list *List) Extend(err error) error {
	if errs, ok := err.(joinedErrors); ok {
		list.errors = append(list.errors, errs.Unwrap()...)
	} else {
		return err
	}

	if list.Len() >= maxErrors {
		return list
	}
	return nil
}

func (list List) Len() int {
	return len(list.errors)
}

// Err returns the list as an error, or nil if empty.
func (list *List) Err() error {
	if list.Len() == 0 {
		return nil
	}
	return list
}
