package service

import (
	"sync"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/utils"
	"github.com/MKhiriev/go-docs-keeper/models"
)

const defaultEventBuffer = 32

// eventsService is an in-process fan-out. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type eventsService struct {
	buffer int
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[chan models.Event]struct{}
}

func NewEventsService(buffer int, logger *logger.Logger) EventsService {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &eventsService{
		buffer:      buffer,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
		subscribers: make(map[chan models.Event]struct{}),
	}
}

func (s *eventsService) Publish(eventType models.EventType, data any) {
	event := models.Event{
		ID:   s.ids.Generate(),
		Type: eventType,
		Data: data,
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			s.logger.Warn().Str("func", "*eventsService.Publish").Str("type", string(eventType)).Msg("subscriber is slow, event dropped")
		}
	}
}

func (s *eventsService) Subscribe() (<-chan models.Event, func()) {
	ch := make(chan models.Event, s.buffer)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}
