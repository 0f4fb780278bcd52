// Package webhttp реализует публичный HTTP-интерфейс приложения:
//   - GET / — запрашивает instance ID у сервиса метаданных и отдаёт text/plain сообщение с ним.
//   - всё остальное — статика из рабочего каталога через стандартный http.FileServer.
package webhttp
