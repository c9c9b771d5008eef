package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
)

func TestVisibilityObserver_EdgeTriggered(t *testing.T) {
	o := directory.NewVisibilityObserver()

	o.Observe(true)
	assert.Len(t, o.Events(), 1)

	// Staying visible must not fire again.
	o.Observe(true)
	o.Observe(true)
	assert.Len(t, o.Events(), 1)

	<-o.Events()

	// A full hide/show cycle fires once more.
	o.Observe(false)
	o.Observe(true)
	assert.Len(t, o.Events(), 1)
}

func TestVisibilityObserver_HiddenEmitsNothing(t *testing.T) {
	o := directory.NewVisibilityObserver()

	o.Observe(false)

	assert.Len(t, o.Events(), 0)
}

func TestBindReveal_ExpandsOncePerEvent(t *testing.T) {
	r := directory.NewReveal(8, 30)
	events := make(chan struct{})
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		directory.BindReveal(r, events, stop)
		close(done)
	}()

	events <- struct{}{}
	events <- struct{}{}
	close(stop)
	<-done

	assert.Equal(t, 24, r.VisibleCount())
}

func TestBindReveal_IgnoresEventsWhenComplete(t *testing.T) {
	r := directory.NewReveal(8, 8)
	events := make(chan struct{})
	done := make(chan struct{})

	go func() {
		directory.BindReveal(r, events, nil)
		close(done)
	}()

	events <- struct{}{}
	close(events)
	<-done

	assert.Equal(t, 8, r.VisibleCount())
	assert.True(t, r.Complete())
}
