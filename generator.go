package randtok

// SeedFunc initializes the random source a generator draws from.
type SeedFunc func()

// PickFunc returns an index in [0, n) for n >= 1. The generator trusts the
// returned value on the hot path and does not re-validate it per call.
type PickFunc func(n int) int

// Generator produces random sequences of T drawn from a fixed alphabet.
// The alphabet is copied at construction, so later mutation of the source the
// caller passed in does not affect output.
//
// A Generator holds no mutable state of its own during Fill; it is safe to
// share across goroutines exactly when its seed and pick functions are. The
// default functions use a shared unsynchronized pseudo-random source, so
// concurrent Fill calls on default-constructed generators must be serialized
// by the caller.
type Generator[T comparable] struct {
	charset []T
	seed    SeedFunc
	pick    PickFunc
}

// ByteGenerator is the common narrow-symbol instantiation.
type ByteGenerator = Generator[byte]

// RuneGenerator is the wide-symbol instantiation for multi-byte alphabets.
type RuneGenerator = Generator[rune]

type settings struct {
	seed SeedFunc
	pick PickFunc
}

// Option customizes the randomness behind a Generator.
type Option func(*settings)

// WithSeed replaces the default time-based seeding operation. Supplying a
// custom seed opts the generator out of process-wide one-time seeding; calling
// it at the right moment becomes the caller's concern.
func WithSeed(fn SeedFunc) Option {
	return func(s *settings) {
		s.seed = fn
	}
}

// WithPick replaces the default uniform index picker. The function must return
// values in [0, n); like WithSeed it opts the generator out of process-wide
// one-time seeding.
func WithPick(fn PickFunc) Option {
	return func(s *settings) {
		s.pick = fn
	}
}

// New builds a Generator from any slice-backed charset, copying it. The ~[]T
// constraint is what guarantees an O(n) copy with the size known up front.
// An empty charset is rejected with ErrEmptyCharset.
func New[S ~[]T, T comparable](charset S, opts ...Option) (*Generator[T], error) {
	cp := make([]T, len(charset))
	copy(cp, charset)

	return newGenerator(cp, opts)
}

// NewString builds a byte Generator from a string charset. Go string literals
// carry no trailing NUL, so every byte of the string is part of the alphabet.
func NewString(charset string, opts ...Option) (*Generator[byte], error) {
	return newGenerator([]byte(charset), opts)
}

// NewRunes builds a rune Generator from a string charset, decoding it as
// UTF-8. Use this when the alphabet contains multi-byte symbols.
func NewRunes(charset string, opts ...Option) (*Generator[rune], error) {
	return newGenerator([]rune(charset), opts)
}

// NewTerminated builds a Generator from a sentinel-terminated buffer: the
// alphabet is everything before the first occurrence of term, and term itself
// is never part of it. If term does not occur the whole buffer is used.
// Intended for charsets arriving from C strings or wire buffers that carry
// their terminator.
func NewTerminated[S ~[]T, T comparable](charset S, term T, opts ...Option) (*Generator[T], error) {
	n := len(charset)

	for i, sym := range charset {
		if sym == term {
			n = i

			break
		}
	}

	cp := make([]T, n)
	copy(cp, charset[:n])

	return newGenerator(cp, opts)
}

// Must panics if construction failed. It allows package-level generator vars:
//
//	var hex = randtok.Must(randtok.NewString(randtok.Hex))
func Must[T comparable](g *Generator[T], err error) *Generator[T] {
	if err != nil {
		panic(err)
	}

	return g
}

// newGenerator takes ownership of charset. It participates in process-wide
// one-time seeding only when both injected behaviors were left at their
// defaults; a customized generator carries no seeding guarantee of its own.
func newGenerator[T comparable](charset []T, opts []Option) (*Generator[T], error) {
	if len(charset) == 0 {
		return nil, ErrEmptyCharset
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	usingDefaults := s.seed == nil && s.pick == nil

	if s.seed == nil {
		s.seed = defaultSeed
	}

	if s.pick == nil {
		s.pick = defaultPick
	}

	g := &Generator[T]{
		charset: charset,
		seed:    s.seed,
		pick:    s.pick,
	}

	if usingDefaults && autoSeed {
		processSeed.do(g.seed)
	}

	return g, nil
}

// Seed invokes the generator's seeding operation unconditionally, regardless
// of whether process-wide one-time seeding already ran.
func (g *Generator[T]) Seed() {
	g.seed()
}

// Len returns the alphabet size.
func (g *Generator[T]) Len() int {
	return len(g.charset)
}

// Fill writes len(buf) randomly chosen symbols into buf. This is the hot
// path: it performs no allocation and no validation beyond the slice bounds
// Go enforces anyway. A picker returning an index outside [0, len charset)
// is a contract violation and will panic on the charset access.
func (g *Generator[T]) Fill(buf []T) {
	for i := range buf {
		buf[i] = g.charset[g.pick(len(g.charset))]
	}
}

// Generate allocates and fills a slice of n symbols. n == 0 yields an empty
// slice without consuming the random source.
func (g *Generator[T]) Generate(n int) []T {
	buf := make([]T, n)
	g.Fill(buf)

	return buf
}

// Materialize allocates a sequence of any slice-backed container type S and
// fills it. Selection stays in Fill; this is only the allocation shim.
func Materialize[S ~[]T, T comparable](g *Generator[T], n int) S {
	buf := make(S, n)
	g.Fill(buf)

	return buf
}

// String materializes n random bytes from g as a string.
func String(g *Generator[byte], n int) string {
	return string(g.Generate(n))
}

// RuneString materializes n random runes from g as a UTF-8 string. The
// result's byte length can exceed n when the alphabet is multi-byte.
func RuneString(g *Generator[rune], n int) string {
	return string(g.Generate(n))
}
