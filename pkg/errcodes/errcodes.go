package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"

	// Shop data pipeline
	MalformedRecord     failure.ErrorCode = "MalformedRecord"     // required field missing or of a wrong shape
	UnknownPaymentShape failure.ErrorCode = "UnknownPaymentShape" // price is neither a number nor a typed block
	SourceUnavailable   failure.ErrorCode = "SourceUnavailable"   // data directory unreadable
	ExportFailed        failure.ErrorCode = "ExportFailed"        // could not write the output document
)
