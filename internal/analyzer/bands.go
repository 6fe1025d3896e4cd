package analyzer

// Bands carries one frame of normalized (0..1) frequency-band levels plus a
// beat trigger. The ten fine bands run sub-bass through ultra-high; the four
// aggregates exist for coarse mappings that predate the fine split.
type Bands struct {
	SubBass    float64 // 20-60 Hz
	LowBass    float64 // 60-120 Hz
	HighBass   float64 // 120-250 Hz
	LowMid     float64 // 250-500 Hz
	CenterMid  float64 // 500-2000 Hz
	HighMid    float64 // 2-4 kHz
	Presence   float64 // 4-6 kHz
	Brilliance float64 // 6-10 kHz
	Air        float64 // 10-14 kHz
	Ultra      float64 // 14-18 kHz

	Bass    float64
	Mid     float64
	Treble  float64
	Overall float64

	Beat bool
}
