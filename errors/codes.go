package errors

// ErrorCode identifies the class of an application error.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_MISSING_FILE
	ErrorCode_FILE_TOO_LARGE
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_GENERATION_FAILED
)

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_MISSING_FILE:
		return "MISSING_FILE"
	case ErrorCode_FILE_TOO_LARGE:
		return "FILE_TOO_LARGE"
	case ErrorCode_EXTRACTION_FAILED:
		return "EXTRACTION_FAILED"
	case ErrorCode_TRANSCRIPTION_FAILED:
		return "TRANSCRIPTION_FAILED"
	case ErrorCode_GENERATION_FAILED:
		return "GENERATION_FAILED"
	default:
		return "UNKNOWN"
	}
}
