package probe

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNoAspectRatio means the report has no Display_aspect_ratio field at
// all. It is surfaced to the caller rather than defaulted.
var ErrNoAspectRatio = errors.New("no display aspect ratio in report")

func hasRatioSeparator(s string) bool {
	return strings.Contains(s, ":")
}

// DisplayWidth returns floor(height * w / h) for an aspect expression in
// "W:H" form or a decimal ratio such as "1.778". The arithmetic is exact,
// so 16:9 at 1080 lines is exactly 1920.
func DisplayWidth(aspect string, height int) (int, error) {
	w, h, err := parseAspect(aspect)
	if err != nil {
		return 0, err
	}

	x := new(big.Rat).SetInt64(int64(height))
	x.Mul(x, w)
	x.Quo(x, h)

	// Denom is always positive, so Euclidean division is a floor.
	q := new(big.Int).Div(x.Num(), x.Denom())
	if !q.IsInt64() {
		return 0, fmt.Errorf("display width overflows for aspect %q", aspect)
	}
	return int(q.Int64()), nil
}

// parseAspect splits an aspect expression into exact width and height
// ratios. A decimal is its own numerator/denominator pair.
func parseAspect(s string) (w, h *big.Rat, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, ErrNoAspectRatio
	}

	if i := strings.Index(s, ":"); i >= 0 {
		wr, okW := new(big.Rat).SetString(strings.TrimSpace(s[:i]))
		hr, okH := new(big.Rat).SetString(strings.TrimSpace(s[i+1:]))
		if !okW || !okH {
			return nil, nil, fmt.Errorf("invalid aspect ratio %q", s)
		}
		if hr.Sign() == 0 {
			return nil, nil, fmt.Errorf("invalid aspect ratio %q: zero height", s)
		}
		return wr, hr, nil
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, nil, fmt.Errorf("invalid aspect ratio %q", s)
	}
	return new(big.Rat).SetInt(r.Num()), new(big.Rat).SetInt(r.Denom()), nil
}
