package nightly

// Log messages
const (
	LogMsgRunStarted       = "Nightly pass started"
	LogMsgRunCompleted     = "Nightly pass completed"
	LogMsgNilItemSkipped   = "Skipping nil item"
	LogMsgQualityViolation = "Quality left allowed range after tick"
)
