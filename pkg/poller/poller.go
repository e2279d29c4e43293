// Package poller runs fixed-interval polling targets, such as the wallet
// sync status or peer list, and fans their results out on a single event
// channel. Targets are rate limited globally and every target stops before
// Stop returns, so no event can be delivered to a torn-down consumer.
package poller

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const eventQueueMaxSize = 100

// Target is a single source polled on the service's interval.
type Target interface {
	Key() string
	Poll(ctx context.Context) (interface{}, error)
}

// Event is the outcome of one poll of one target.
type Event struct {
	Key     string
	Payload interface{}
	Err     error
}

// Service is the interface of the polling service.
type Service interface {
	Start()
	Stop()
	AddTarget(target Target)
	RemoveTarget(key string)
	EventChannel() chan Event
}

// Opts defines the parameters needed for creating a poller with NewService.
type Opts struct {
	IntervalInMilliseconds int
	RequestsPerSecond      float64
}

type poller struct {
	interval  int
	limiter   *rate.Limiter
	eventChan chan Event
	targets   map[string]*targetHandler
	mutex     *sync.RWMutex
	wg        *sync.WaitGroup
	started   bool
}

// NewService returns a poller ready to watch over its targets. Use Start and
// Stop to manage it.
func NewService(opts Opts) Service {
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &poller{
		interval:  opts.IntervalInMilliseconds,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		eventChan: make(chan Event, eventQueueMaxSize),
		targets:   map[string]*targetHandler{},
		mutex:     &sync.RWMutex{},
		wg:        &sync.WaitGroup{},
	}
}

func (p *poller) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started {
		return
	}
	p.started = true
	for _, handler := range p.targets {
		p.wg.Add(1)
		go handler.start()
	}
}

func (p *poller) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started {
		return
	}
	for _, handler := range p.targets {
		handler.stop()
	}
	p.targets = map[string]*targetHandler{}
	p.wg.Wait()
	p.started = false
	close(p.eventChan)
}

func (p *poller) EventChannel() chan Event {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.eventChan
}

func (p *poller) AddTarget(target Target) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.targets[target.Key()]; ok {
		return
	}

	handler := newTargetHandler(target, p.wg, p.interval, p.eventChan, p.limiter)
	p.targets[target.Key()] = handler
	if p.started {
		p.wg.Add(1)
		go handler.start()
	}
}

func (p *poller) RemoveTarget(key string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if handler, ok := p.targets[key]; ok {
		handler.stop()
		delete(p.targets, key)
	}
}

type targetHandler struct {
	target    Target
	wg        *sync.WaitGroup
	ticker    *time.Ticker
	eventChan chan Event
	limiter   *rate.Limiter
	ctx       context.Context
	cancel    context.CancelFunc
}

func newTargetHandler(
	target Target,
	wg *sync.WaitGroup,
	interval int,
	eventChan chan Event,
	limiter *rate.Limiter,
) *targetHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &targetHandler{
		target:    target,
		wg:        wg,
		ticker:    time.NewTicker(time.Duration(interval) * time.Millisecond),
		eventChan: eventChan,
		limiter:   limiter,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (th *targetHandler) start() {
	log.Debugf("start polling: %v", th.target.Key())
	defer th.wg.Done()

	for {
		select {
		case <-th.ticker.C:
			th.poll()
		case <-th.ctx.Done():
			th.ticker.Stop()
			return
		}
	}
}

func (th *targetHandler) poll() {
	if err := th.limiter.Wait(th.ctx); err != nil {
		return
	}

	payload, err := th.target.Poll(th.ctx)
	if th.ctx.Err() != nil {
		return
	}

	select {
	case th.eventChan <- Event{Key: th.target.Key(), Payload: payload, Err: err}:
	case <-th.ctx.Done():
	}
}

func (th *targetHandler) stop() {
	log.Debugf("stop polling: %v", th.target.Key())
	th.cancel()
}
