package taxonomy

// Polarity is the fixed word-to-weight table used for rule-based sentiment
// scoring. Weights are summed over the tokenized input; the resulting score
// is bucketed at +/-0.3.
var Polarity = map[string]float64{
	// positive
	"accomplished": 0.8,
	"achieved":     0.7,
	"awarded":      0.8,
	"delivered":    0.5,
	"driven":       0.5,
	"excellent":    0.9,
	"exceeded":     0.8,
	"improved":     0.6,
	"innovative":   0.6,
	"launched":     0.5,
	"led":          0.5,
	"optimized":    0.6,
	"outstanding":  0.9,
	"passionate":   0.6,
	"proficient":   0.5,
	"promoted":     0.7,
	"recognized":   0.6,
	"reduced":      0.4,
	"successful":   0.7,
	"won":          0.7,

	// negative
	"failed":       -0.8,
	"fired":        -0.9,
	"inadequate":   -0.7,
	"inexperience": -0.5,
	"lacking":      -0.6,
	"limited":      -0.4,
	"mediocre":     -0.6,
	"poor":         -0.7,
	"problem":      -0.3,
	"struggled":    -0.6,
	"terminated":   -0.7,
	"unable":       -0.5,
	"unsuccessful": -0.7,
	"weak":         -0.6,
}
