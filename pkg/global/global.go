package global

var (
	Version   = "0.1.0"
	BuildTime = "none"
	Verbose   = false
)
