package openapifx

type Config struct {
	Enabled bool

	// PublicHost and PublicPath override the host and base path advertised
	// in the served document. Empty values keep the generated ones.
	PublicHost string
	PublicPath string
}
