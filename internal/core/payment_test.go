package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	var tests = []struct {
		name        string
		current     PaymentStatus
		expected    PaymentStatus
		expectedErr error
	}{
		{
			name:     "not started advances to in progress",
			current:  PaymentStatusNotStarted,
			expected: PaymentStatusInProgress,
		},
		{
			name:     "in progress advances to completed",
			current:  PaymentStatusInProgress,
			expected: PaymentStatusCompleted,
		},
		{
			name:        "completed is terminal",
			current:     PaymentStatusCompleted,
			expectedErr: ErrPaymentCompleted,
		},
		{
			name:        "canceled is terminal",
			current:     PaymentStatusCanceled,
			expectedErr: ErrPaymentCanceled,
		},
		{
			name:        "unknown status rejected",
			current:     PaymentStatus("REFUNDED"),
			expectedErr: ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextStatus(tt.current)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, next)
		})
	}
}

func TestCancelStatus(t *testing.T) {
	var tests = []struct {
		name        string
		current     PaymentStatus
		expectedErr error
	}{
		{
			name:    "not started can be canceled",
			current: PaymentStatusNotStarted,
		},
		{
			name:    "in progress can be canceled",
			current: PaymentStatusInProgress,
		},
		{
			name:        "completed cannot be canceled",
			current:     PaymentStatusCompleted,
			expectedErr: ErrPaymentCompleted,
		},
		{
			name:        "already canceled fails distinctly",
			current:     PaymentStatusCanceled,
			expectedErr: ErrPaymentCanceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := CancelStatus(tt.current)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, PaymentStatusCanceled, next)
		})
	}
}

func TestCancelStatus_TerminalFailuresDistinguishable(t *testing.T) {
	_, completedErr := CancelStatus(PaymentStatusCompleted)
	_, canceledErr := CancelStatus(PaymentStatusCanceled)
	require.Error(t, completedErr)
	require.Error(t, canceledErr)
	require.NotEqual(t, completedErr.Error(), canceledErr.Error())
}

func TestPayment_IsTerminal(t *testing.T) {
	require.False(t, (&Payment{Status: PaymentStatusNotStarted}).IsTerminal())
	require.False(t, (&Payment{Status: PaymentStatusInProgress}).IsTerminal())
	require.True(t, (&Payment{Status: PaymentStatusCompleted}).IsTerminal())
	require.True(t, (&Payment{Status: PaymentStatusCanceled}).IsTerminal())
}
