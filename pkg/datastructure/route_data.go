package datastructure

// RoutePlan is the immutable result of one shortest-path query. Built
// fresh per query and handed to the boundary for formatting, never
// stored.
type RoutePlan struct {
	path          []Waypoint
	totalDistance float64 // km
	estimatedTime int     // minutes
	startPoint    Waypoint
	endPoint      Waypoint
}

func NewRoutePlan(path []Waypoint, totalDistance float64, estimatedTime int) *RoutePlan {
	return &RoutePlan{
		path:          path,
		totalDistance: totalDistance,
		estimatedTime: estimatedTime,
		startPoint:    path[0],
		endPoint:      path[len(path)-1],
	}
}

func (rp *RoutePlan) GetPath() []Waypoint {
	return rp.path
}

func (rp *RoutePlan) GetTotalDistance() float64 {
	return rp.totalDistance
}

func (rp *RoutePlan) GetEstimatedTime() int {
	return rp.estimatedTime
}

func (rp *RoutePlan) GetStartPoint() Waypoint {
	return rp.startPoint
}

func (rp *RoutePlan) GetEndPoint() Waypoint {
	return rp.endPoint
}
