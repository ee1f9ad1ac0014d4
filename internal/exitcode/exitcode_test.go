package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendalink/vendalink/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: Success},
		{name: "plain error", err: stderrors.New("boom"), want: GeneralError},
		{name: "auth required", err: errors.NewAuthRequiredError(), want: AuthError},
		{name: "invalid credentials", err: errors.NewInvalidCredentialsError(nil), want: AuthError},
		{name: "session expired", err: errors.NewSessionExpiredError(), want: AuthError},
		{name: "permission denied", err: errors.NewPermissionDeniedError("delete deal"), want: PermissionDenied},
		{name: "api unavailable", err: errors.NewAPIUnavailableError(stderrors.New("dial tcp")), want: NetworkError},
		{name: "missing input", err: errors.NewInputRequiredError("name"), want: UsageError},
		{name: "other coded error", err: errors.New(errors.ErrCodeConfigInvalid, "bad config"), want: GeneralError},
		{
			name: "wrapped coded error",
			err:  fmt.Errorf("command failed: %w", errors.NewSessionExpiredError()),
			want: AuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}
