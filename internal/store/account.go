package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmeshcher/abhiko-system/internal/model"
)

// ErrDuplicateAccount возвращается при регистрации с уже занятым email.
var (
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoActiveSession возвращается, когда операция требует активной сессии.
	ErrNoActiveSession = errors.New("no active session")
)

// AccountStore управляет профилем пользователя, учётными данными и бонусным
// счётом. Каждая мутация пересохраняет профиль под ключами по email и по
// идентификатору, чтобы другие хранилища находили пользователя без индекса.
type AccountStore struct {
	kv KV
}

// NewAccountStore создаёт хранилище аккаунтов поверх ключ-значение слоя.
func NewAccountStore(kv KV) *AccountStore {
	return &AccountStore{kv: kv}
}

// Signup регистрирует нового пользователя и делает его активной сессией.
// Email сравнивается без учёта регистра; повторная регистрация возвращает
// ErrDuplicateAccount и не меняет существующий аккаунт.
func (s *AccountStore) Signup(ctx context.Context, profile model.User, password string) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	credentials, err := s.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	if _, taken := credentials[email]; taken {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, email)
	}

	user := model.User{
		ID:       uuid.NewString(),
		FullName: profile.FullName,
		Email:    email,
		Phone:    profile.Phone,
		Address:  profile.Address,
		Avatar:   profile.Avatar,
		Points:   0,
	}

	credentials[email] = password
	if err := setJSON(ctx, s.kv, keyCredentials, credentials); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login проверяет учётные данные и делает пользователя активной сессией.
func (s *AccountStore) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	credentials, err := s.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	secret, ok := credentials[email]
	if !ok || secret != password {
		return nil, ErrInvalidCredentials
	}

	var user model.User
	if err := getJSON(ctx, s.kv, profileKey(email), &user); err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Обновляем запись по идентификатору, чтобы лента находила автора.
	if err := s.persist(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout завершает активную сессию. Выход без сессии не является ошибкой.
func (s *AccountStore) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current возвращает пользователя активной сессии.
func (s *AccountStore) Current(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := getJSON(ctx, s.kv, keySession, &user); err != nil {
		if isNotFound(err) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile сливает изменяемые поля профиля в аккаунт активной сессии.
// Email и идентификатор не меняются.
func (s *AccountStore) UpdateProfile(ctx context.Context, profile model.Profile) (*model.User, error) {
	user, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	user.FullName = profile.FullName
	user.Phone = profile.Phone
	user.Address = profile.Address
	user.Avatar = profile.Avatar

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddPoints начисляет бонусные баллы активной сессии.
// Вызов без сессии или с неположительным числом ничего не делает.
func (s *AccountStore) AddPoints(ctx context.Context, points int) error {
	if points <= 0 {
		return nil
	}

	user, err := s.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return nil
		}
		return err
	}

	user.Points += points
	return s.persist(ctx, user)
}

// SpendPoints списывает бонусные баллы активной сессии, не опуская счёт ниже нуля.
// Вызов без сессии или с неположительным числом ничего не делает.
func (s *AccountStore) SpendPoints(ctx context.Context, points int) error {
	if points <= 0 {
		return nil
	}

	user, err := s.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return nil
		}
		return err
	}

	user.Points -= points
	if user.Points < 0 {
		user.Points = 0
	}
	return s.persist(ctx, user)
}

func (s *AccountStore) loadCredentials(ctx context.Context) (map[string]string, error) {
	credentials := make(map[string]string)
	if err := getJSON(ctx, s.kv, keyCredentials, &credentials); err != nil && !isNotFound(err) {
		return nil, err
	}
	return credentials, nil
}

// persist сохраняет профиль под обоими ключами и обновляет активную сессию.
func (s *AccountStore) persist(ctx context.Context, user *model.User) error {
	if err := setJSON(ctx, s.kv, profileKey(user.Email), user); err != nil {
		return err
	}
	if err := setJSON(ctx, s.kv, profileByIDKey(user.ID), user); err != nil {
		return err
	}
	return setJSON(ctx, s.kv, keySession, user)
}
