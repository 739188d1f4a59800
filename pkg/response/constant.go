package response

// DateTimeFormat is the wire format for task timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

// DefaultErrorMessage hides internal failures from API consumers.
const DefaultErrorMessage = "internal server error"
