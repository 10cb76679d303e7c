package gsheets

import (
	"net/http"

	"gitlab.com/tozd/go/errors"
	"google.golang.org/api/googleapi"

	"github.com/walteh/sheetsplit/pkg/retry"
)

// remoteErr wraps an API error with the failing operation and marks it
// permanent when retrying cannot help.
func remoteErr(op string, err error) error {
	wrapped := errors.Errorf("%s: %w", op, err)

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && permanentCode(apiErr.Code) {
		return retry.Permanent(wrapped)
	}
	return wrapped
}

// permanentCode reports whether a status code cannot be fixed by retrying.
// 429 is the quota signal and 408 a server-side timeout; the rest of the 4xx
// range means the request itself is wrong.
func permanentCode(code int) bool {
	return code >= 400 && code < 500 &&
		code != http.StatusTooManyRequests &&
		code != http.StatusRequestTimeout
}
