package config

const (
	KeyAPIBase       = "brain_api_base"
	KeyAPITimeout    = "brain_api_timeout"
	KeyHost          = "mcp_host"
	KeyPort          = "mcp_port"
	KeyTransport     = "mcp_transport"
	KeyOAuthEnabled  = "oauth_enabled"
	KeyPublicBaseURL = "public_base_url"
	KeyLogLevel      = "log_level"
)
