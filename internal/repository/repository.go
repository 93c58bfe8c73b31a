// Package repository содержит реализации ключ-значение хранилища сервиса абхико.
//
// Все состояния сервиса сохраняются как JSON-значения под строковыми ключами.
// Каждая реализация дополнительно публикует сигнал изменения ключа, чтобы
// другие экземпляры могли перечитать общие данные (аналог storage-события
// между вкладками в исходном дизайне).
package repository

import "errors"

// ErrKeyNotFound возвращается при чтении отсутствующего ключа.
var ErrKeyNotFound = errors.New("key not found")
