package covercircle

import (
	"github.com/osuushi/covercircle/advanced"
	opt "github.com/repeale/fp-go/option"
	"github.com/sasha-s/go-deadlock"
)

// A cloud that can be shared between goroutines. Every call holds the lock for
// its whole duration.
//
// If the window size is positive, pushing past it pops the oldest point.
type SyncCloud struct {
	mu     deadlock.Mutex
	cloud  advanced.Cloud
	window int
}

func NewSyncCloud(window int) *SyncCloud {
	return &SyncCloud{window: window}
}

func (s *SyncCloud) Push(point Point) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer recoverInto(&err)

	s.cloud.Push(point)
	if s.window > 0 && s.cloud.Len() > s.window {
		s.cloud.Pop()
	}
	return nil
}

func (s *SyncCloud) Pop() (result opt.Option[Point], err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer recoverInto(&err)

	return s.cloud.Pop(), nil
}

// The window size. Fails if the cloud's bookkeeping has fallen out of step.
func (s *SyncCloud) Len() (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer recoverInto(&err)

	return s.cloud.Len(), nil
}

func (s *SyncCloud) Window() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloud.Window()
}

func (s *SyncCloud) CoverCircle() Circle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloud.CoverCircle()
}

func (s *SyncCloud) MinimumCoverCircle() Circle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloud.MinimumCoverCircle()
}

func recoverInto(err *error) {
	recoveredErr := advanced.HandleCoverPanicRecover(recover())
	if recoveredErr != nil {
		*err = recoveredErr
	}
}
