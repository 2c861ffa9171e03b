package stophandle

type Option interface {
	apply(*config)
}

type config struct {
	releaseOnGC bool
}

type Options []Option

func (s Options) Config() config {
	cfg := config{
		releaseOnGC: true,
	}
	for _, opt := range s {
		opt.apply(&cfg)
	}
	return cfg
}

// OptionReleaseOnGC defines if a handle clone that became unreachable
// without Release is released by the garbage collector. It is enabled
// by default.
//
// Without it a lost clone keeps the pair pending forever.
type OptionReleaseOnGC bool

func (opt OptionReleaseOnGC) apply(cfg *config) {
	cfg.releaseOnGC = bool(opt)
}
