package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const CookieName = "session_token"

func ttlFromEnv() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 30 * 24 * time.Hour
}

// cookieSecure determines the Secure flag for cookies. Defaults true in non-local.
func cookieSecure() bool {
	if v := strings.ToLower(os.Getenv("COOKIE_SECURE")); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return true
}

type credentialsReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// RegisterRoutes mounts register/login/logout/me. onChange fires after
// every successful auth transition; the app uses it to wipe local game
// state so a new identity starts from a clean slate.
func RegisterRoutes(r *gin.Engine, repo *Repository, onChange func()) {
	if onChange == nil {
		onChange = func() {}
	}
	api := r.Group("/api/auth")

	api.POST("/register", func(c *gin.Context) {
		var req credentialsReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if len(req.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short (min 8)"})
			return
		}
		displayName := strings.TrimSpace(req.DisplayName)
		if displayName == "" {
			displayName = strings.SplitN(req.Email, "@", 2)[0]
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
			return
		}

		u, err := repo.CreateUser(req.Email, string(hash), displayName)
		if err != nil {
			if errors.Is(err, ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Registration signs the user in directly.
		s, err := repo.CreateSession(u.ID, ttlFromEnv())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failed"})
			return
		}
		setSessionCookie(c, s)
		onChange()
		c.JSON(http.StatusCreated, gin.H{"id": u.ID, "email": u.Email, "display_name": u.DisplayName})
	})

	api.POST("/login", func(c *gin.Context) {
		var req credentialsReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing email or password"})
			return
		}

		u, err := repo.GetUserByEmail(req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		s, err := repo.CreateSession(u.ID, ttlFromEnv())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failed"})
			return
		}
		setSessionCookie(c, s)
		onChange()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api.POST("/logout", func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err == nil && tok != "" {
			_ = repo.DeleteSession(tok)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		// overwrite with expired cookie
		c.SetCookie(CookieName, "", -1, "/", "", cookieSecure(), true)
		onChange()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api.GET("/me", func(c *gin.Context) {
		u, ok := CurrentUser(c, repo)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "email": u.Email, "display_name": u.DisplayName})
	})
}

func setSessionCookie(c *gin.Context, s Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, s.Token, maxAge, "/", "", cookieSecure(), true)
}

// CurrentUser resolves user from the session cookie for convenience.
func CurrentUser(c *gin.Context, repo *Repository) (User, bool) {
	tok, err := c.Cookie(CookieName)
	if err != nil || tok == "" {
		return User{}, false
	}
	u, err := repo.GetUserBySession(tok)
	if err != nil {
		return User{}, false
	}
	return u, true
}

// AuthRequired guards routes that need an authenticated caller.
func AuthRequired(repo *Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c, repo); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
