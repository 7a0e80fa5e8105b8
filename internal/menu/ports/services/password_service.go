// Package services определяет интерфейсы вспомогательных сервисов приложения.
package services

import "context"

// PasswordService определяет операции хэширования и проверки паролей.
// Повторное хэширование одного и того же пароля дает разные дайджесты.
// Verify возвращает false как при несовпадении, так и при некорректном
// дайджесте - проверка никогда не завершается ошибкой.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}
