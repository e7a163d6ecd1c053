package steel

// Version metadata, overridable at build time via -ldflags.
var (
	Version   = "0.3.0"
	BuildDate = "unknown"
)
