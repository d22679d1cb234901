package validate

import "testing"

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "alice@example.com", "password123", false},
		{"bad email", "not-an-email", "password123", true},
		{"short password", "alice@example.com", "short", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Login(tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Login(%q, %q) error = %v, wantErr %v", tt.email, tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestRegistration_CollectsAllFieldErrors(t *testing.T) {
	err := Registration("bad", "x", "a!", "")
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if len(fe) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(fe), fe)
	}
}

func TestPhone(t *testing.T) {
	if err := Phone("+15551234567"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	if err := Phone("555-1234"); err == nil {
		t.Error("expected error for non-E.164 phone")
	}
}

func TestOTP(t *testing.T) {
	if err := OTP("123456"); err != nil {
		t.Errorf("valid code rejected: %v", err)
	}
	for _, bad := range []string{"", "12345", "1234567", "12345a"} {
		if err := OTP(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
