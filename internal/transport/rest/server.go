// rest содержит HTTP-эндпоинты сервиса токенов.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в HTTP.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в статусы:
//   - ErrInvalidCredentials -> 401 (тело неотличимо от прочих ошибок входа);
//   - ErrMalformedToken/ErrUnknownToken/ErrTokenExpired -> 401 с единым телом
//     {"error":"invalid token"} — снаружи эти случаи не различаются;
//   - иные ошибки -> 503 (хранилище недоступно, запрос можно повторить).
//
// Безопасность:
//   - Наружу не утекают детали внутренних ошибок; подробности попадают
//     в логи через middleware на уровне сервера.
package rest

import (
	"errors"
	"net/http"

	"github.com/korotkovaa/token-service/internal/models"
	"github.com/korotkovaa/token-service/internal/service"

	"github.com/gin-gonic/gin"
)

type Server struct {
	service *service.Service
}

// New создаёт HTTP-сервер токенов поверх сервисного слоя.
func New(service *service.Service) *Server {
	return &Server{service: service}
}

// Register навешивает маршруты на движок gin.
func (s *Server) Register(r *gin.Engine) {
	auth := r.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/validate", s.validate)
	auth.POST("/logout", s.logout)
	auth.POST("/salt", s.salt)
}

// loginRequest — учётные данные для входа. Соль и хэш приходят от внешнего
// хранилища пользователей (base64 в JSON), пароль — от клиента.
type loginRequest struct {
	UserID   uint64 `json:"user_id"`
	Password string `json:"password"`
	Salt     []byte `json:"salt"`
	Hash     []byte `json:"hash"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

// login аутентифицирует пользователя и выпускает новый токен.
// Маппинг ошибок:
//   - ErrInvalidCredentials -> 401;
//   - прочее -> 503.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, wire, err := s.service.IssueToken(
		c.Request.Context(),
		req.UserID,
		[]byte(req.Password),
		models.Credentials{Salt: req.Salt, Hash: req.Hash},
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": token.UserID,
		"token":   wire,
	})
}

// validate проверяет предъявленный токен.
// Маппинг ошибок:
//   - ErrMalformedToken/ErrUnknownToken/ErrTokenExpired -> 401 (единое тело);
//   - прочее -> 503.
func (s *Server) validate(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := s.service.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrMalformedToken) ||
			errors.Is(err, service.ErrUnknownToken) ||
			errors.Is(err, service.ErrTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

// logout отзывает предъявленный токен.
// Маппинг ошибок:
//   - ErrMalformedToken/ErrUnknownToken -> 401 (единое тело);
//   - прочее -> 503.
func (s *Server) logout(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.service.RevokeToken(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, service.ErrMalformedToken) || errors.Is(err, service.ErrUnknownToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// salt выдаёт свежую соль для регистрации пользователя во внешнем
// хранилище. Ошибка источника энтропии — 500.
func (s *Server) salt(c *gin.Context) {
	salt, err := s.service.GenerateSalt()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"salt": salt})
}
