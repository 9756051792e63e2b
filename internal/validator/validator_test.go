package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/validator"
)

func TestValidateRegister(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name    string
		input   validator.RegisterInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: validator.RegisterInput{Username: "gleb", Email: "gleb@example.com", Password: "secret1"},
		},
		{
			name:    "missing username",
			input:   validator.RegisterInput{Email: "gleb@example.com", Password: "secret1"},
			wantErr: "username_required",
		},
		{
			name:    "short username",
			input:   validator.RegisterInput{Username: "ab", Email: "gleb@example.com", Password: "secret1"},
			wantErr: "username_too_short",
		},
		{
			name:    "bad email",
			input:   validator.RegisterInput{Username: "gleb", Email: "not-an-email", Password: "secret1"},
			wantErr: "invalid_email_format",
		},
		{
			name:    "short password",
			input:   validator.RegisterInput{Username: "gleb", Email: "gleb@example.com", Password: "12345"},
			wantErr: "password_too_short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid input", func(t *testing.T) {
		err := v.ValidateLogin(&validator.LoginInput{Email: "gleb@example.com", Password: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("missing password", func(t *testing.T) {
		err := v.ValidateLogin(&validator.LoginInput{Email: "gleb@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password_required")
	})
}

func TestValidateArticle(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name    string
		input   validator.ArticleInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: validator.ArticleInput{Title: "Test Article", Description: "about tests", Body: "text"},
		},
		{
			name:    "missing title",
			input:   validator.ArticleInput{Description: "d", Body: "b"},
			wantErr: "title_required",
		},
		{
			name:    "short title",
			input:   validator.ArticleInput{Title: "ab", Description: "d", Body: "b"},
			wantErr: "title_too_short",
		},
		{
			name:    "missing description",
			input:   validator.ArticleInput{Title: "Test", Body: "b"},
			wantErr: "description_required",
		},
		{
			name:    "missing body",
			input:   validator.ArticleInput{Title: "Test", Description: "d"},
			wantErr: "body_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticle(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid body", func(t *testing.T) {
		err := v.ValidateComment(&validator.CommentInput{Body: "nice article"})
		assert.NoError(t, err)
	})

	t.Run("empty body", func(t *testing.T) {
		err := v.ValidateComment(&validator.CommentInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body_required")
	})

	t.Run("body over 500 characters", func(t *testing.T) {
		err := v.ValidateComment(&validator.CommentInput{Body: strings.Repeat("x", 501)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body_too_long")
	})
}

func TestValidateUpdateUser(t *testing.T) {
	v := validator.NewValidator()

	t.Run("all fields empty is valid", func(t *testing.T) {
		err := v.ValidateUpdateUser(&validator.UpdateUserInput{})
		assert.NoError(t, err)
	})

	t.Run("bad email is rejected", func(t *testing.T) {
		err := v.ValidateUpdateUser(&validator.UpdateUserInput{Email: "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_email_format")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		err := v.ValidateUpdateUser(&validator.UpdateUserInput{Password: "123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password_too_short")
	})
}

func TestFieldErrors(t *testing.T) {
	v := validator.NewValidator()

	err := v.ValidateRegister(&validator.RegisterInput{})
	require.Error(t, err)

	fields := validator.FieldErrors(err)

	assert.Contains(t, fields, "Username")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}
