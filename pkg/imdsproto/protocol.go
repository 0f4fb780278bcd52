// Package imdsproto описывает протокол сервиса метаданных инстанса (IMDSv2).
package imdsproto

// Параметры протокола IMDSv2.
const (
	DefaultBaseURL = "http://169.254.169.254"

	PathToken      = "/latest/api/token"
	PathInstanceID = "/latest/meta-data/instance-id"

	HeaderTokenTTL = "X-aws-ec2-metadata-token-ttl-seconds"
	HeaderToken    = "X-aws-ec2-metadata-token"

	// Время жизни токена в секундах: 1..21600.
	MinTokenTTLSeconds     = 1
	MaxTokenTTLSeconds     = 21600
	DefaultTokenTTLSeconds = MaxTokenTTLSeconds
)
