package instancesvc

import (
	"context"
	"log"

	"github.com/tareqmohamed/instanceinfo/internal/config"
	"github.com/tareqmohamed/instanceinfo/internal/models"
	"github.com/tareqmohamed/instanceinfo/pkg/imdsclient"
)

// Service выдаёт идентификатор текущего инстанса.
type Service interface {
	FetchInstanceID(ctx context.Context) models.InstanceID
}

type Deps struct {
	Client   imdsclient.Client
	TokenTTL int
}

type Instances struct {
	Deps
}

// New конструирует сервис с заданными зависимостями.
func New(deps Deps) *Instances {
	return &Instances{Deps: deps}
}

// NewFromConfig собирает сервис поверх HTTP-клиента метаданных из конфигурации.
func NewFromConfig(cfg *config.Config) *Instances {
	return New(Deps{
		Client: imdsclient.New(imdsclient.Options{
			BaseURL: cfg.Metadata.BaseURL,
			Timeout: cfg.Metadata.Timeout,
		}),
		TokenTTL: cfg.Metadata.TokenTTLSeconds,
	})
}

var _ Service = (*Instances)(nil)

// FetchInstanceID выполняет два последовательных запроса: токен, затем instance ID.
// Ошибки не возвращаются наружу, а поглощаются в результат. Повторов нет.
func (s *Instances) FetchInstanceID(ctx context.Context) models.InstanceID {
	token, err := s.Client.Token(ctx, s.TokenTTL)
	if err != nil {
		log.Printf("instancesvc: %s step failed: %v", models.StepToken, err)
		return models.Failed(models.StepToken, err)
	}

	id, err := s.Client.InstanceID(ctx, token)
	if err != nil {
		log.Printf("instancesvc: %s step failed: %v", models.StepInstanceID, err)
		return models.Failed(models.StepInstanceID, err)
	}

	return models.Found(id)
}
