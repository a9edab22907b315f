package snapshot

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации снапшота
	ErrEncode = errors.New("snapshot: failed to encode snapshot")

	// ErrDecode возвращается при ошибке разбора файла снапшота
	ErrDecode = errors.New("snapshot: failed to decode snapshot")

	// ErrWrite возвращается при ошибке записи файла снапшота
	ErrWrite = errors.New("snapshot: failed to write snapshot file")

	// ErrRead возвращается при ошибке чтения файла снапшота
	ErrRead = errors.New("snapshot: failed to read snapshot file")
)
