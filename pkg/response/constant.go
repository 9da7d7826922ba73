package response

const (
	// DateTimeFormat is the layout of DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"

	// DefaultErrorMessage is rendered for errors that are not HTTPErrors.
	DefaultErrorMessage = "Something went wrong"
	// ValidationErrorCode is the body code of request validation failures.
	ValidationErrorCode = 110004
)
