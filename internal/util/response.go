package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// Success is the canonical {"success":true} payload. Endpoints that must not
// leak account existence always return this exact shape.
func Success() Envelope {
	return Envelope{"success": true}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
