package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mrvatsan/APTITUDE-AI/internal/config"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": UserID(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	config.ServiceConfig.JWTSecret = "test-secret"
	r := protectedRouter()

	token, err := GenerateToken("u1", "ananya")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	config.ServiceConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u1", "ananya")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// A token signed under a different secret must not validate.
	config.ServiceConfig.JWTSecret = "rotated-secret"
	if _, err := validateToken(token); err == nil {
		t.Error("token signed with the old secret validated after rotation")
	}

	config.ServiceConfig.JWTSecret = "test-secret"
	claims, err := validateToken(token)
	if err != nil {
		t.Fatalf("validateToken failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "ananya" {
		t.Errorf("claims = %s/%s, want u1/ananya", claims.UserID, claims.Username)
	}
}
