package auth_login

// LoginRequest HTTP запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP ответ со свежим токеном сессии
type LoginResponse struct {
	Token string `json:"token"`
}
