package docmodel

// Measurement constants for the units used by word-processing formats.
// OOXML stores page geometry and indents in twips and font sizes in
// half-points; embedded drawing sizes use EMU.
const (
	EmuPerCm    = 360000
	EmuPerInch  = 914400
	EmuPerPoint = 12700
	TwipsPerCm  = 567
	TwipsPerPt  = 20
	PtPerInch   = 72
)

// Twips is a twentieth of a point, the base length unit of OOXML.
type Twips int

// Cm converts a twips value to centimeters.
func (t Twips) Cm() float64 {
	return float64(t) / TwipsPerCm
}

// Pt converts a twips value to points.
func (t Twips) Pt() float64 {
	return float64(t) / TwipsPerPt
}

// CmToTwips converts centimeters to twips.
func CmToTwips(cm float64) Twips {
	return Twips(cm * TwipsPerCm)
}

// PtToTwips converts points to twips.
func PtToTwips(pt float64) Twips {
	return Twips(pt * TwipsPerPt)
}

// EmuToCm converts EMU (English Metric Units) to centimeters.
func EmuToCm(emu int) float64 {
	return float64(emu) / EmuPerCm
}

// EmuToPt converts EMU to points.
func EmuToPt(emu int) float64 {
	return float64(emu) / EmuPerPoint
}
