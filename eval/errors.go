/*
File    : loxmix/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

// RuntimeError is a runtime error represented as data, not control flow:
// it is returned like any other error, never panicked, so the driver can
// map it to exit code 70 without needing a recover().
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
