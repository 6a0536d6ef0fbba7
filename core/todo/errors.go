package todo

import (
	"fmt"
	"net/http"
)

// Error is the failure envelope carried by every rejected operation.
// It implements the error interface; predefined values can be matched with
// errors.Is.
type Error struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Description)
}

// Predefined failure envelopes. These two codes are the whole taxonomy:
// 500 covers the injected random failure and any unexpected fault on an
// otherwise valid request, 400 covers index precondition violations.
var (
	ErrInternal        = Error{Code: http.StatusInternalServerError, Description: "internal error"}
	ErrIndexOutOfBound = Error{Code: http.StatusBadRequest, Description: "index out of bound"}
)
