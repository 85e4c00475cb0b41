package domain

import (
	"fmt"
	"strings"
)

// TranslateSymbol converts a TradingView ticker into a Coinbase Advanced
// product id.
//
// Examples:
//   - "COINBASE:SOLUSD" -> "SOL-USD"
//   - "BINANCE:SOLUSDT" -> "SOL-USD"  (USDT quote is mapped to USD)
//   - "BTC-USD"         -> "BTC-USD"  (already a product id, no-op)
func TranslateSymbol(symbol string) (string, error) {
	s := symbol
	// Strip the exchange prefix if present.
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}

	// Already in product form. Keeps translation idempotent.
	if strings.Contains(s, "-") {
		return s, nil
	}

	s = strings.ReplaceAll(s, "USDT", "USD")

	// The quote currency is the trailing 3 letters.
	if len(s) <= 3 {
		return "", &MalformedRequestError{
			Reason: fmt.Sprintf("symbol %q too short to split into base and quote", symbol),
			Err:    ErrInvalidSymbol,
		}
	}

	base := s[:len(s)-3]
	quote := s[len(s)-3:]
	return base + "-" + quote, nil
}
