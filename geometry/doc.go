// Package geometry provides integer 2-D points and the perimeter of the
// shapes built from them: polygons and circles.
//
// Shape is a closed set. Only *Polygon and Circle implement it, so a type
// switch over those two cases is exhaustive.
package geometry
