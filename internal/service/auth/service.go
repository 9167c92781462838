package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	adminRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/adminuser"
)

// session активная сессия администратора
type session struct {
	email     string
	expiresAt time.Time
}

// Service сервис аутентификации администраторов
// Сессии хранятся в памяти процесса: админ-панель обслуживает
// единицы пользователей, перезапуск сервиса просто разлогинивает их
type Service struct {
	adminRepo    AdminUserRepository
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	sessions map[string]session
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminUserRepository, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		adminRepo:    adminRepo,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]session),
	}
}

// EnsureAdmin создает учетную запись администратора из конфигурации,
// если в таблице еще нет ни одной. Вызывается при старте сервиса.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - count admins: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureAdmin - hash password: %v", ErrInternal, err)
	}

	if _, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("%w: EnsureAdmin - create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: bootstrapped admin account %s", email)
	return nil
}

// Login проверяет учетные данные и выдает токен сессии
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for %s", email)
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	now := s.timeProvider.Now()

	s.mu.Lock()
	s.pruneExpiredLocked(now)
	s.sessions[token] = session{
		email:     admin.Email,
		expiresAt: now.Add(s.sessionTTL),
	}
	s.mu.Unlock()

	s.logger.Info("Login: admin %s logged in", admin.Email)
	return token, nil
}

// Validate проверяет токен сессии и возвращает email администратора
func (s *Service) Validate(token string) (string, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", ErrInvalidSession
	}
	if now.After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", ErrInvalidSession
	}

	return sess.email, nil
}

// Logout удаляет сессию. Неизвестный токен не является ошибкой.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// pruneExpiredLocked удаляет истекшие сессии; вызывается под mu
func (s *Service) pruneExpiredLocked(now time.Time) {
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
