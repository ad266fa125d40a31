package redis

const (
	// KeyResolutions is the hash of successful resolutions, keyed by rights code.
	KeyResolutions = "cclicense:stats:resolutions"
	// KeyFailures is the hash of parse failures, keyed by error kind.
	KeyFailures = "cclicense:stats:failures"
	// KeyTotal is the counter of all resolve requests.
	KeyTotal = "cclicense:stats:total"
)
