package conf

type Options struct {
	Name    string
	Verbose bool
	level   int
}

func (Options) Default() Options {
	return Options{Name: "default", level: 3}
}

func (o Options) Level() int {
	return o.level
}
