package cmd

import "os"

// Custom error handling exit code.
//
// os.Exit() bypasses deferred functions. This error carries the exit code
// up to Main, after deferred functions ran.
type errorCode struct {
	code    int
	message string
}

func (err errorCode) Error() string {
	return err.message
}

func (err errorCode) Exit() {
	os.Exit(err.code)
}

var errEmpty = errorCode{code: 2, message: "no combination"}
