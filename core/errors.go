package core

import "fmt"

// ErrorAuthentication means the caller could not be identified:
// missing or malformed token, unknown discriminator, or a principal
// that no longer exists. The same token will never succeed again.
type ErrorAuthentication struct {
	Reason string
}

func (e ErrorAuthentication) Error() string {
	return fmt.Sprintf("Authentication Failed: %s", e.Reason)
}

func NewErrorAuthentication(reason string) ErrorAuthentication {
	return ErrorAuthentication{Reason: reason}
}

// ErrorPermissionDenied means the principal was identified but no
// policy rule allows the operation.
type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorInvalidArgument struct {
	Message string
}

func (e ErrorInvalidArgument) Error() string {
	return fmt.Sprintf("Invalid Argument: %s", e.Message)
}

func NewErrorInvalidArgument(message string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Message: message}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}
