package component

type Stats struct {
	Throws     int
	Bounces    int
	LastBounce string
}

var StatsComponent = NewComponent[Stats]()
