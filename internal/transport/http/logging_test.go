package http

import (
	"testing"
)

func TestSanitizeBodyRedactsSecrets(t *testing.T) {
	body := []byte(`{"email":"dana@example.com","password":"hunter22","code":"ABC234","resetToken":"uuid-here","nested":{"otp":"XYZ789","note":"ok"}}`)

	result, ok := sanitizeBody(body, "application/json").(map[string]interface{})
	if !ok {
		t.Fatalf("expected a sanitized map, got %T", result)
	}

	if result["email"] != "dana@example.com" {
		t.Fatalf("email should pass through, got %v", result["email"])
	}
	for _, key := range []string{"password", "code", "resetToken"} {
		if result[key] != "redacted" {
			t.Fatalf("%s should be redacted, got %v", key, result[key])
		}
	}

	nested, ok := result["nested"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested map, got %T", result["nested"])
	}
	if nested["otp"] != "redacted" || nested["note"] != "ok" {
		t.Fatalf("nested sanitization wrong: %v", nested)
	}
}

func TestSanitizeBodyMultipartAndBinary(t *testing.T) {
	if got := sanitizeBody([]byte("irrelevant"), "multipart/form-data; boundary=x"); got != "multipart" {
		t.Fatalf("expected \"multipart\", got %v", got)
	}
	if got := sanitizeBody([]byte{0xff, 0xfe, 0x00}, "application/octet-stream"); got != "binary" {
		t.Fatalf("expected \"binary\", got %v", got)
	}
	if got := sanitizeBody(nil, "application/json"); got != nil {
		t.Fatalf("expected nil for empty body, got %v", got)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for _, key := range []string{"password", "newPassword", "resetToken", "otp_code", "CODE"} {
		if !isSensitiveKey(key) {
			t.Fatalf("%q should be sensitive", key)
		}
	}
	for _, key := range []string{"email", "name", "message"} {
		if isSensitiveKey(key) {
			t.Fatalf("%q should not be sensitive", key)
		}
	}
}
