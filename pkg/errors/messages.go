package errors

const (
	ErrNoInputSource        = "must specify an input source"
	ErrMultipleInputSources = "multiple input sources not supported"
	ErrMissingInputValue    = "missing value for input data option %s"
	ErrMissingAlgorithm     = "must specify an algorithm"
	ErrUnexpectedArguments  = "unexpected arguments: %s"
	ErrInvalidAlgorithm     = "invalid algorithm %q"

	ErrOpeningFile   = "Error opening %s"
	ErrReadingInput  = "Read error"
	ErrCreatingFile  = "Unable to create file"
	ErrWritingOutput = "Error writing output"

	ErrCallingAlgorithm = "Error calling algorithm"
	ErrResponse         = "Response error"
)
