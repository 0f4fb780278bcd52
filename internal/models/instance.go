package models

import "errors"

// UnavailablePrefix предшествует описанию ошибки в тексте неудачного результата.
const UnavailablePrefix = "Unable to retrieve instance ID: "

// FetchStep указывает, на каком шаге протокола метаданных произошёл сбой.
type FetchStep string

const (
	StepToken      FetchStep = "token"
	StepInstanceID FetchStep = "instance-id"
)

// FetchError оборачивает сетевую ошибку любого шага. Текст ошибки совпадает с исходным,
// шаг нужен только для логов.
type FetchError struct {
	Step FetchStep
	Err  error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// Is позволяет проверять любой сбой через errors.Is(err, ErrMetadataFetch).
func (e *FetchError) Is(target error) bool { return target == ErrMetadataFetch }

// InstanceID — результат запроса к сервису метаданных: либо сырой идентификатор, либо ошибка.
type InstanceID struct {
	ID  string
	Err error
}

// Found возвращает успешный результат с идентификатором как есть.
func Found(id string) InstanceID {
	return InstanceID{ID: id}
}

// Failed возвращает неудачный результат для указанного шага.
func Failed(step FetchStep, err error) InstanceID {
	return InstanceID{Err: &FetchError{Step: step, Err: err}}
}

// OK сообщает, удалось ли получить идентификатор.
func (i InstanceID) OK() bool {
	return i.Err == nil
}

// Step возвращает шаг, на котором произошёл сбой, либо пустую строку.
func (i InstanceID) Step() FetchStep {
	var fe *FetchError
	if errors.As(i.Err, &fe) {
		return fe.Step
	}
	return ""
}

// Text отдаёт строку для встраивания в ответ: идентификатор или описание сбоя.
func (i InstanceID) Text() string {
	if i.Err != nil {
		return UnavailablePrefix + i.Err.Error()
	}
	return i.ID
}
