// internal/event/event.go
package event

// EventType names a game event, e.g. EnemyKilled or RunEnded.
type EventType string

// Event carries one of the typed payloads from types.go in Data;
// events without a payload leave it nil.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик: PlayerSystem (опыт за убийства), StateSystem (фазы забега)
// и сам Game (звук, финал).
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously within the current tick.
// Listeners of a type are called in the order they subscribed, so a level-up
// raised by a kill is visible before the kill's dispatch returns.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет listener в конец очереди для eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch вызывает подписчиков event.Type; без подписчиков событие теряется.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
