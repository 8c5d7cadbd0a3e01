package errors

// Error message constants for the import-sorter application
const (
	// Record processing errors
	ErrMsgFailedToReadRecords   = "failed to read records"
	ErrMsgFailedToDecodeRecords = "failed to decode records"
	ErrMsgFailedToEncodeRecords = "failed to encode records"
	ErrMsgFailedToWriteRecords  = "failed to write records"

	// Configuration errors
	ErrMsgFailedToReadConfig  = "failed to read config file"
	ErrMsgFailedToParseConfig = "failed to parse config file"
	ErrMsgUnknownLengthMode   = "unknown length mode: %q"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindRecordFiles = "failed to find record files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files or specify a single file for stdout output."
	InfoMsgNoRecordFilesFound          = "No record files found in directory: %s"
	InfoMsgFoundRecordFiles            = "Found %d record files in directory: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
)
