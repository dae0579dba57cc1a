// Cover circles for a sliding window of 2D points.
//
// Points are pushed onto the back of a window and popped off the front, and
// after every change the convex hull of the window is repaired in place
// rather than rebuilt. A circle covering the whole window is then derived
// from the hull alone.
//
// The incremental machinery lives in the advanced package. This package
// exposes the common entry points, converting internal consistency failures
// into errors.
package covercircle

import (
	"github.com/osuushi/covercircle/advanced"
	"github.com/osuushi/covercircle/geom"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Vector = geom.Vector
type Circle = advanced.Circle
type Cloud = advanced.Cloud

func NewCloud() *Cloud {
	return advanced.NewCloud()
}

// Find the smallest circle covering all of the points. An empty point set gives
// the empty circle.
func Cover(points ...Point) (result Circle, err error) {
	defer func() {
		recoveredErr := advanced.HandleCoverPanicRecover(recover())
		if recoveredErr != nil {
			result = advanced.EmptyCircle()
			err = recoveredErr
		}
	}()
	cloud := advanced.NewCloud()
	cloud.Extend(points...)
	return cloud.MinimumCoverCircle(), nil
}

// Slide a window of the given size over the points, returning the cover circle
// of the window after each point is pushed.
func Slide(points []Point, window int) (result []Circle, err error) {
	if window <= 0 {
		return nil, errors.Errorf("window size must be positive, got %d", window)
	}
	defer func() {
		recoveredErr := advanced.HandleCoverPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	result = make([]Circle, 0, len(points))
	cloud := advanced.NewCloud()
	for _, point := range points {
		cloud.Push(point)
		if cloud.Len() > window {
			cloud.Pop()
		}
		result = append(result, cloud.MinimumCoverCircle())
	}
	return result, nil
}
