package datastructure

type seedPoint struct {
	id       string
	lat, lon float64
}

type seedConnection struct {
	from, to string
	distance float64 // km
}

// fixed demo dataset around central Jakarta. compatibility tests depend
// on these exact ids and weights.
var (
	seedPoints = []seedPoint{
		{"A", -6.175392, 106.827153},
		{"B", -6.193125, 106.821810},
		{"C", -6.158326, 106.845718},
		{"D", -6.186486, 106.834091},
		{"E", -6.224895, 106.809296},
	}

	seedConnections = []seedConnection{
		{"A", "B", 2.5},
		{"A", "C", 3.2},
		{"A", "D", 4.1},
		{"B", "D", 2.8},
		{"B", "E", 3.5},
		{"C", "D", 2.1},
		{"D", "E", 3.8},
	}
)

// NewDefaultGraph builds the seed graph the service starts with.
func NewDefaultGraph() (*Graph, error) {
	g := NewGraph()
	for _, p := range seedPoints {
		g.AddPoint(p.id, p.lat, p.lon)
	}
	for _, c := range seedConnections {
		if err := g.AddConnection(c.from, c.to, c.distance); err != nil {
			return nil, err
		}
	}
	return g, nil
}
