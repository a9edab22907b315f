package config

import "errors"

var (
	// ErrReadConfig возвращается при ошибке чтения или разбора файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
