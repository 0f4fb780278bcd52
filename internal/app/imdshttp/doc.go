// Package imdshttp реализует локальный эмулятор сервиса метаданных инстанса (IMDSv2) для разработки и тестов:
//   - PUT /latest/api/token — выдаёт сессионный токен, TTL берётся из X-aws-ec2-metadata-token-ttl-seconds (1..21600).
//   - GET /latest/meta-data/instance-id — отдаёт настроенный instance ID при валидном X-aws-ec2-metadata-token.
package imdshttp
