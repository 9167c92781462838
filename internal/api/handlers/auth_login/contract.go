package auth_login

import "context"

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(token string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
