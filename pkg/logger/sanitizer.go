package logger

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)[\s:=]+[^\s]+`)
	bearerPattern   = regexp.MustCompile(`(?i)(bearer)\s+[A-Za-z0-9._~+/=-]+`)
	tokenPattern    = regexp.MustCompile(`(?i)(token|jwt)[\s:=]+[^\s]+`)
	secretPattern   = regexp.MustCompile(`(?i)(secret|signing[_-]?key)[\s:=]+[^\s]+`)
	jwtPattern      = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
)

const redactedPlaceholder = "[REDACTED]"

var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"token", "jwt", "bearer", "authorization",
	"secret", "signing_key",
}

// SanitizeLogMessage removes credentials and bearer tokens from a log message.
func SanitizeLogMessage(message string) string {
	message = bearerPattern.ReplaceAllString(message, "${1} "+redactedPlaceholder)
	message = jwtPattern.ReplaceAllString(message, redactedPlaceholder)
	message = passwordPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = tokenPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = secretPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	return message
}

// SanitizeMap redacts values whose keys look like credentials.
func SanitizeMap(data map[string]any) map[string]any {
	sanitized := make(map[string]any, len(data))
	for k, v := range data {
		if isSensitiveKey(k) {
			sanitized[k] = redactedPlaceholder
			continue
		}
		sanitized[k] = v
	}
	return sanitized
}

// Fields converts data into zap fields after redaction.
func Fields(data map[string]any) []zap.Field {
	sanitized := SanitizeMap(data)
	fields := make([]zap.Field, 0, len(sanitized))
	for k, v := range sanitized {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitiveKey := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitiveKey) {
			return true
		}
	}
	return false
}
