package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/uzbooks/checkbot/internal/domain/answers/repository"
	"github.com/uzbooks/checkbot/internal/domain/model"
)

// ErrBookNotFound возвращается, если книги с таким номером нет в хранилище.
var ErrBookNotFound = errors.New("book not found")

// KeyStore хранит снимок ключей ответов всех книг в памяти.
// Снимок заменяется целиком одной атомарной записью, поэтому читатели
// никогда не видят наполовину обновленное отображение.
type KeyStore struct {
	loader   repository.KeyLoader
	snapshot atomic.Value // map[string]model.AnswerKey
}

// NewKeyStore загружает начальный снимок через loader.
// Ошибка загрузки на старте фатальна для вызывающего.
func NewKeyStore(ctx context.Context, loader repository.KeyLoader) (*KeyStore, error) {
	s := &KeyStore{loader: loader}
	if err := s.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load answer keys: %w", err)
	}
	return s, nil
}

// Reload перечитывает ключи и атомарно подменяет снимок.
// При ошибке прежний снимок остается на месте.
func (s *KeyStore) Reload(ctx context.Context) error {
	keys, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	s.snapshot.Store(keys)
	return nil
}

// Lookup возвращает копию ключа книги. Копия нужна, чтобы сессия
// не держала ссылку на общий снимок через перезагрузки.
func (s *KeyStore) Lookup(book string) (model.AnswerKey, error) {
	keys, _ := s.snapshot.Load().(map[string]model.AnswerKey)
	key, ok := keys[book]
	if !ok {
		return nil, ErrBookNotFound
	}
	return key.Clone(), nil
}

// Books возвращает количество книг в текущем снимке.
func (s *KeyStore) Books() int {
	keys, _ := s.snapshot.Load().(map[string]model.AnswerKey)
	return len(keys)
}
