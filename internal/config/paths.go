package config

const (
	StorageDir = ".gvt"

	LatestVersionFile = ".gvt_latest"
	ActiveVersionFile = ".gvt_active"
	MessageEntry      = ".gvt_message"
)
