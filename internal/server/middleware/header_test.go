package middleware

import (
	"net/http"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedErr   string
	}{
		{
			name:          "valid bearer token",
			authHeader:    "Bearer eyJhbGciOiJIUzI1NiJ9.x.y",
			expectedToken: "eyJhbGciOiJIUzI1NiJ9.x.y",
			expectedErr:   "",
		},
		{
			name:          "empty header",
			authHeader:    "",
			expectedToken: "",
			expectedErr:   "Authorization header is required",
		},
		{
			name:          "missing Bearer prefix",
			authHeader:    "eyJhbGciOiJIUzI1NiJ9.x.y",
			expectedToken: "",
			expectedErr:   "Authorization header must start with 'Bearer '",
		},
		{
			name:          "Bearer with lowercase",
			authHeader:    "bearer eyJhbGciOiJIUzI1NiJ9.x.y",
			expectedToken: "",
			expectedErr:   "Authorization header must start with 'Bearer '",
		},
		{
			name:          "Bearer with empty token",
			authHeader:    "Bearer ",
			expectedToken: "",
			expectedErr:   "token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			if err != nil {
				t.Fatal(err)
			}

			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			token, err := ExtractBearerToken(req)

			if tt.expectedErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				if token != tt.expectedToken {
					t.Errorf("expected token %q, got %q", tt.expectedToken, token)
				}

				return
			}

			if err == nil {
				t.Errorf("expected error %q, got none", tt.expectedErr)
				return
			}

			if err.Error() != tt.expectedErr {
				t.Errorf("expected error %q, got %q", tt.expectedErr, err.Error())
			}
		})
	}
}
