package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Форматы отметки времени сохранения в снапшоте
const (
	savedDateFormat = "2006-01-02"
	savedTimeFormat = "15:04"
)

// file структура файла снапшота на диске
// Счетчик хранится отдельно от сущностей: идентификаторы не переиспользуются,
// поэтому счетчик может быть больше числа сущностей после отмен
type file struct {
	Count      int64           `json:"count"`
	Entities   json.RawMessage `json:"entities"`
	SavedDate  string          `json:"savedDate"`
	SavedTime  string          `json:"savedTime"`
}

// Store файловое хранилище снапшотов коллекций
// Каждая коллекция сохраняется целиком в <dir>/<storeKey>.json
type Store struct {
	dir string
}

// NewStore создает хранилище снапшотов в каталоге dir
// Каталог создается при первом сохранении
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load читает снапшот коллекции storeKey и разбирает сущности в entities
// (указатель на map). Возвращает сохраненный счетчик и признак того, что
// файл существовал. Отсутствующий файл не является ошибкой: коллекция
// начинает с пустого состояния
func (s *Store) Load(storeKey string, entities interface{}) (count int64, found bool, err error) {
	path := s.path(storeKey)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	if len(data) == 0 {
		// Пустой файл трактуется как отсутствие снапшота
		return 0, false, nil
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	if len(f.Entities) > 0 {
		if err := json.Unmarshal(f.Entities, entities); err != nil {
			return 0, false, fmt.Errorf("%w: %s entities: %v", ErrDecode, path, err)
		}
	}

	return f.Count, true, nil
}

// Save записывает снапшот коллекции storeKey на диск
// Запись атомарна: сначала во временный файл, затем rename, чтобы сбой
// посреди записи не портил предыдущий снапшот
func (s *Store) Save(storeKey string, count int64, entities interface{}) error {
	raw, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, storeKey, err)
	}

	now := time.Now()
	f := file{
		Count:     count,
		Entities:  raw,
		SavedDate: now.Format(savedDateFormat),
		SavedTime: now.Format(savedTimeFormat),
	}

	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, storeKey, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, s.dir, err)
	}

	path := s.path(storeKey)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	return nil
}

func (s *Store) path(storeKey string) string {
	return filepath.Join(s.dir, storeKey+".json")
}
