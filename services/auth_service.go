package services

import (
	"log"
	"strings"
	"time"

	"spiderhome-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Failed attempts are counted over this trailing window.
	attemptWindow = 15 * time.Minute
	// Lockout thresholds within the window.
	maxFailuresPerIP       = 5
	maxFailuresPerUsername = 3

	// MsgLockedOut is returned while an IP or account is locked out.
	MsgLockedOut = "too many failed login attempts, please try again later"
	// MsgInvalidCredentials is the single generic failure message; it never
	// reveals whether the username exists.
	MsgInvalidCredentials = "incorrect username or password"
)

// LoginResult is the outcome of an authentication call.
type LoginResult struct {
	Success bool               `json:"success"`
	User    *models.PublicUser `json:"user,omitempty"`
	Token   string             `json:"token,omitempty"`
	Message string             `json:"message,omitempty"`
}

// AuthService composes the brute-force guard, the bcrypt credential check and
// the token codec.
type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, now: time.Now}
}

// isBlocked reports whether the IP or the username has exceeded its failure
// threshold within the trailing window. A query failure fails open: locking
// every visitor out on a DB hiccup is worse than letting an attacker get a
// few extra guesses.
func (s *AuthService) isBlocked(ip, username string) bool {
	cutoff := s.now().Add(-attemptWindow)

	var ipFailures int64
	err := s.DB.Model(&models.LoginAttempt{}).
		Where("ip_address = ? AND success = ? AND attempted_at > ?", ip, false, cutoff).
		Count(&ipFailures).Error
	if err != nil {
		log.Printf("warning: brute-force guard query failed (ip): %v", err)
		return false
	}
	if ipFailures >= maxFailuresPerIP {
		return true
	}

	if username == "" {
		return false
	}

	var userFailures int64
	err = s.DB.Model(&models.LoginAttempt{}).
		Where("username = ? AND success = ? AND attempted_at > ?", username, false, cutoff).
		Count(&userFailures).Error
	if err != nil {
		log.Printf("warning: brute-force guard query failed (username): %v", err)
		return false
	}
	return userFailures >= maxFailuresPerUsername
}

// recordAttempt appends one row to the attempt log. Failures are logged and
// swallowed; logging must never abort the authentication decision.
func (s *AuthService) recordAttempt(ip, username string, success bool) {
	attempt := models.LoginAttempt{
		IPAddress:   ip,
		Username:    username,
		Success:     success,
		AttemptedAt: s.now(),
	}
	if err := s.DB.Create(&attempt).Error; err != nil {
		log.Printf("warning: failed to record login attempt: %v", err)
	}
}

// Authenticate answers whether a login is valid and, on success, mints a
// session token. Every call records exactly one attempt row.
func (s *AuthService) Authenticate(username, password, clientIP string) LoginResult {
	username = strings.TrimSpace(username)

	// Lockout check comes first so a locked caller learns nothing about the
	// account, not even via timing of the password check.
	if s.isBlocked(clientIP, username) {
		s.recordAttempt(clientIP, username, false)
		return LoginResult{Success: false, Message: MsgLockedOut}
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		s.recordAttempt(clientIP, username, false)
		return LoginResult{Success: false, Message: MsgInvalidCredentials}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordAttempt(clientIP, username, false)
		return LoginResult{Success: false, Message: MsgInvalidCredentials}
	}

	s.recordAttempt(clientIP, username, true)

	token, err := s.Tokens.Issue(user)
	if err != nil {
		log.Printf("failed to issue session token for %s: %v", username, err)
		return LoginResult{Success: false, Message: "failed to issue session token"}
	}

	view := user.Public()
	return LoginResult{Success: true, User: &view, Token: token}
}
