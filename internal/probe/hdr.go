package probe

import "strings"

// HDRFormat returns "hdr10", "hlg" or "sdr" from the track's transfer
// characteristics and colour primaries: PQ / SMPTE ST 2084 transfer means
// hdr10, HLG / ARIB STD-B67 means hlg, and BT.2020 primaries alone still
// count as hdr10.
func (v VideoTrack) HDRFormat() string {
	tc := strings.ToUpper(v.track.Value("Transfer_characteristics"))
	switch {
	case strings.Contains(tc, "HLG"), strings.Contains(tc, "ARIB STD-B67"):
		return "hlg"
	case tc == "PQ", strings.Contains(tc, "2084"):
		return "hdr10"
	}

	if strings.Contains(strings.ToUpper(v.track.Value("Colour_primaries")), "BT.2020") {
		return "hdr10"
	}

	return "sdr"
}
