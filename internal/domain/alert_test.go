package domain

import "testing"

func TestAlertEvent_ValidSignal(t *testing.T) {
	tests := []struct {
		signal string
		want   bool
	}{
		{SignalBuy, true},
		{SignalExit, true},
		{"HOLD", false},
		{"buy_signal", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("signal "+tt.signal, func(t *testing.T) {
			alert := AlertEvent{Signal: tt.signal, Symbol: "BTCUSD"}
			if alert.ValidSignal() != tt.want {
				t.Errorf("ValidSignal() for %q = %v, want %v", tt.signal, alert.ValidSignal(), tt.want)
			}
		})
	}
}
