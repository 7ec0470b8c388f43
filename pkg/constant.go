package pkg

const (
	INF_WEIGHT float64 = 1e15

	// assumed average travel speed for ETA estimation, in km/h
	AVERAGE_SPEED_KMH = 40.0

	EPS = 1e-9
)

// map rendering colors shared with the web client
const (
	ROUTE_LINE_COLOR   = "#007bff"
	START_MARKER_COLOR = "#28a745"
	END_MARKER_COLOR   = "#dc3545"

	ROUTE_LINE_WIDTH = 3
)

const (
	DEBUG = false
)
