package imdsclient

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tareqmohamed/instanceinfo/pkg/imdsproto"
)

// DefaultTimeout ограничивает каждый запрос к сервису метаданных.
const DefaultTimeout = 2 * time.Second

type Client interface {
	// Token Получить сессионный токен с заданным TTL
	Token(ctx context.Context, ttlSeconds int) (string, error)
	// InstanceID Получить идентификатор инстанса по токену
	InstanceID(ctx context.Context, token string) (string, error)
}

// Options настраивает клиента. Нулевые значения заменяются дефолтами.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	c       *http.Client
	baseURL string
}

// New создаёт HTTP-клиент сервиса метаданных.
func New(opts Options) Client {
	if opts.BaseURL == "" {
		opts.BaseURL = imdsproto.DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &httpClient{
		c:       &http.Client{Timeout: opts.Timeout},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

// Token запрашивает токен через PUT. Тело ответа возвращается без проверок и обрезки.
func (h *httpClient) Token(ctx context.Context, ttlSeconds int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, h.baseURL+imdsproto.PathToken, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(imdsproto.HeaderTokenTTL, strconv.Itoa(ttlSeconds))

	body, status, err := h.do(req)
	if err != nil {
		return "", err
	}

	// Неуспешный статус не считается ошибкой: тело уходит дальше как токен.
	if status >= http.StatusMultipleChoices {
		log.Printf("imdsclient: token endpoint answered %d, body is used as token as-is", status)
	}

	return body, nil
}

// InstanceID запрашивает идентификатор инстанса, передавая токен без изменений.
func (h *httpClient) InstanceID(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+imdsproto.PathInstanceID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(imdsproto.HeaderToken, token)

	body, _, err := h.do(req)
	if err != nil {
		return "", err
	}

	return body, nil
}

func (h *httpClient) do(req *http.Request) (string, int, error) {
	resp, err := h.c.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}

	return string(b), resp.StatusCode, nil
}
