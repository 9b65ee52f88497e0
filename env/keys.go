package env

const (
	// Truncate options
	KeyTruncateLength   = "CFG_TRUNCATE_LENGTH"
	KeyTruncateOmission = "CFG_TRUNCATE_OMISSION"
)
