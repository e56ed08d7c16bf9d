package service

import "errors"

var (
	// ErrNotFound - запись с указанным идентификатором отсутствует
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument - некорректные входные данные (тип реакции, пустой патч и т.п.)
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized - неверные учетные данные администратора
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable - внешний сервис геокодирования недоступен
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrNoLocations - геокодер ответил, но ничего не нашел
	ErrNoLocations = errors.New("no locations found")
	// ErrGeocodeResponse - геокодер ответил 200, но тело не удалось разобрать
	ErrGeocodeResponse = errors.New("malformed geocoder response")
)
