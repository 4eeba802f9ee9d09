package walk

// Sampler defaults.
const (
	// DefaultMaxAttempts bounds rejected chains per Sample call.
	DefaultMaxAttempts = 1000

	// MinSamplerLength is the smallest closed BCC walk worth sampling.
	MinSamplerLength = 4
)

const panicMaxAttemptsInvalid = "walk: WithMaxAttempts: attempts must be > 0"

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithMaxAttempts bounds the number of chains tried per Sample call.
// Panics when attempts <= 0.
func WithMaxAttempts(attempts int) SamplerOption {
	if attempts <= 0 {
		panic(panicMaxAttemptsInvalid)
	}

	return func(s *Sampler) { s.maxAttempts = attempts }
}
