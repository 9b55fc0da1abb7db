package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock detected", &pq.Error{Code: "40P01"}, true},
		{"lock not available", &pq.Error{Code: "55P03"}, true},
		{"wrapped pq error", fmt.Errorf("commit: %w", &pq.Error{Code: "40001"}), true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryableError(tt.err))
		})
	}
}
