package webhttp

import (
	"context"
	"fmt"
	"net/http"
)

const indexMessage = "This page is from a simple application that prints the following message. " +
	"I uploaded the application to github and created a Dockerfile to build an image and run a container to host the application. " +
	"I set up a jenkins pipeline to containerize the application and push it to docker hub ther provesion the infra on aws using terrafrom " +
	"the after provisioning run ansible roles to pull the image and run the container the expose it on port 5000 . EC2 Instance ID: %s"

// index всегда отвечает 200: сбой получения instance ID попадает в текст ответа.
// Сравнивается сырая цель запроса: "/?x=1" уже не корень и уходит в статику.
// Отключение клиента запрос к метаданным не прерывает, его ограничивают только таймауты клиента.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.RequestURI != "/" {
		s.files.ServeHTTP(w, r)
		return
	}

	id := s.Instances.FetchInstanceID(context.WithoutCancel(r.Context()))

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, indexMessage, id.Text())
}
